package sheet

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	perr "talentmap/internal/platform/errors"
	"talentmap/internal/platform/logger"

	"github.com/xuri/excelize/v2"
)

const utf8BOM = "\uFEFF"

// Options controls how a source is opened
type Options struct {
	// Sheet selects a worksheet by name for workbook sources; empty means the first sheet
	Sheet string
}

// Table is a fully loaded tabular source
type Table struct {
	Path   string
	Sheet  string // worksheet name; empty for CSV
	Header []string
	rows   [][]string
	index  map[string]int
}

// Row is one data row of a Table
type Row struct {
	line  int
	cells []string
	index map[string]int
}

// Open loads the source at path, choosing the reader by file extension
func Open(path string, opts Options) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, dataErr(perr.Wrapf(err, perr.ErrorCodeDataLoad, "%s: file not found", path), path)
		}
		return nil, dataErr(perr.Wrapf(err, perr.ErrorCodeDataLoad, "%s: unreadable", path), path)
	}

	var (
		sheet string
		rows  [][]string
		err   error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx":
		sheet, rows, err = readWorkbook(path, opts.Sheet)
	case ".csv":
		rows, err = readCSV(path)
	default:
		return nil, dataErr(perr.DataLoadf("%s: unsupported file type %q", path, filepath.Ext(path)), path)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, dataErr(perr.DataLoadf("%s: no header row", path), path)
	}

	t := &Table{Path: path, Sheet: sheet, rows: rows[1:]}
	t.Header = make([]string, len(rows[0]))
	t.index = make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		h = strings.TrimSpace(strings.TrimPrefix(h, utf8BOM))
		t.Header[i] = h
		if h == "" {
			continue
		}
		if _, dup := t.index[h]; !dup {
			t.index[h] = i
		}
	}

	logger.Named("sheet").Debug().
		Str("path", path).
		Str("sheet", sheet).
		Strs("header", t.Header).
		Int("rows", len(t.rows)).
		Msg("sheet: loaded")
	return t, nil
}

func readWorkbook(path, want string) (string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", nil, dataErr(perr.Wrapf(err, perr.ErrorCodeDataLoad, "%s: open workbook", path), path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Named("sheet").Warn().Err(cerr).Str("path", path).Msg("sheet: close workbook")
		}
	}()

	sheet := want
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return "", nil, dataErr(perr.DataLoadf("%s: workbook has no sheets", path), path)
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return "", nil, dataErr(perr.DataLoadf("%s: sheet %q not found (have %v)", path, sheet, f.GetSheetList()), path)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return "", nil, dataErr(perr.Wrapf(err, perr.ErrorCodeDataLoad, "%s: read sheet %q", path, sheet), path)
	}
	return sheet, rows, nil
}

func readCSV(path string) ([][]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, dataErr(perr.Wrapf(err, perr.ErrorCodeDataLoad, "%s: open", path), path)
	}
	defer func() { _ = fh.Close() }()

	r := csv.NewReader(fh)
	r.FieldsPerRecord = -1 // ragged rows allowed
	var rows [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, dataErr(perr.Wrapf(err, perr.ErrorCodeDataLoad, "%s: parse csv", path), path)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func dataErr(err error, path string) error { return perr.WithField(err, path) }

// Has reports whether the header contains col
func (t *Table) Has(col string) bool {
	_, ok := t.index[col]
	return ok
}

// Require fails with a DataLoad error naming every missing column
func (t *Table) Require(cols ...string) error {
	var missing []string
	for _, c := range cols {
		if !t.Has(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return dataErr(perr.DataLoadf("%s: missing required column(s) %s (header: %s)",
		t.Path, quoteAll(missing), quoteAll(t.Header)), t.Path)
}

// Len returns the number of data rows, including blank ones
func (t *Table) Len() int { return len(t.rows) }

// Each calls fn for every non-blank data row in sheet order; iteration stops at the first error
func (t *Table) Each(fn func(Row) error) error {
	for i, cells := range t.rows {
		if blank(cells) {
			continue
		}
		if err := fn(Row{line: i + 2, cells: cells, index: t.index}); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the cell under col, or "" if the column is unknown or the row is short
func (r Row) Get(col string) string {
	i, ok := r.index[col]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return r.cells[i]
}

// Line returns the 1-based row number in the source (the header is line 1)
func (r Row) Line() int { return r.line }

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func quoteAll(xs []string) string {
	q := make([]string, len(xs))
	for i, x := range xs {
		q[i] = `"` + x + `"`
	}
	return "[" + strings.Join(q, ", ") + "]"
}
