// Package sheet reads small tabular sources (spreadsheets and CSV) into memory
//
// Design choices:
// - Row 1 is the header; data rows follow. Columns are addressed by header name only.
// - xlsx cells are read raw (number formats not applied) so a flag stored as 1 reads "1"
//   whatever the cell's display format is.
// - Entirely blank rows are skipped; short rows read "" for the missing cells.
// - Every failure (missing file, unknown format, unreadable workbook, missing column) is a
//   perr DataLoad error carrying the file path as its field.
package sheet
