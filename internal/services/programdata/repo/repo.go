// Package repo loads the scholar roster and program flags from tabular sources
package repo

import (
	"context"
	"math"
	"strconv"
	"strings"

	"talentmap/internal/adapters/sheet"
	perr "talentmap/internal/platform/errors"
	"talentmap/internal/platform/logger"
	dom "talentmap/internal/services/programdata/domain"
)

// Column headers of the input sheets
const (
	ColCountry = "Country"
	ColYear    = "Year"
	ColName    = "Name"
)

// Source locates one tabular input
type Source struct {
	Path  string
	Sheet string // workbook sheet; empty means the first
}

// open is the table opener (seam for tests)
var open = sheet.Open

// ScholarRepo implements dom.ScholarReaderPort over a spreadsheet with Country, Year, Name columns
type ScholarRepo struct {
	src Source
	gaz dom.Gazetteer
}

// NewScholars constructs a ScholarRepo
func NewScholars(src Source, gaz dom.Gazetteer) *ScholarRepo {
	return &ScholarRepo{src: src, gaz: gaz}
}

// LoadScholars groups names by normalized country then year, preserving row order.
// Duplicate names are kept
func (r *ScholarRepo) LoadScholars(ctx context.Context) (dom.Scholars, dom.LoadStats, error) {
	stats := dom.LoadStats{Path: r.src.Path}
	tbl, err := load(r.src, ColCountry, ColYear, ColName)
	if err != nil {
		return nil, stats, perr.WithOp(err, "load_scholars")
	}

	out := dom.Scholars{}
	_ = tbl.Each(func(row sheet.Row) error {
		stats.Rows++
		country := r.gaz.Normalize(row.Get(ColCountry))
		if country == "" {
			stats.SkippedRows++
			logger.C(ctx).Debug().Str("path", r.src.Path).Int("line", row.Line()).Msg("scholars: blank country, row skipped")
			return nil
		}
		year := YearKey(row.Get(ColYear))
		byYear, ok := out[country]
		if !ok {
			byYear = map[string][]string{}
			out[country] = byYear
		}
		byYear[year] = append(byYear[year], row.Get(ColName))
		return nil
	})

	stats.Countries = len(out)
	warnSkipped(ctx, stats)
	return out, stats, nil
}

// ProgramRepo implements dom.ProgramReaderPort over a spreadsheet with Country and one column per flag tag
type ProgramRepo struct {
	src Source
	gaz dom.Gazetteer
}

// NewPrograms constructs a ProgramRepo
func NewPrograms(src Source, gaz dom.Gazetteer) *ProgramRepo {
	return &ProgramRepo{src: src, gaz: gaz}
}

// LoadPrograms maps each normalized country to the flag tags set on its row, in dom.FlagTags order.
// Every country present gets an entry, possibly empty; a repeated country keeps its last row
func (r *ProgramRepo) LoadPrograms(ctx context.Context) (dom.Programs, dom.LoadStats, error) {
	stats := dom.LoadStats{Path: r.src.Path}
	cols := []string{ColCountry}
	for _, t := range dom.FlagTags {
		cols = append(cols, string(t))
	}
	tbl, err := load(r.src, cols...)
	if err != nil {
		return nil, stats, perr.WithOp(err, "load_programs")
	}

	out := dom.Programs{}
	_ = tbl.Each(func(row sheet.Row) error {
		stats.Rows++
		country := r.gaz.Normalize(row.Get(ColCountry))
		if country == "" {
			stats.SkippedRows++
			logger.C(ctx).Debug().Str("path", r.src.Path).Int("line", row.Line()).Msg("programs: blank country, row skipped")
			return nil
		}
		if _, dup := out[country]; dup {
			logger.C(ctx).Debug().Str("country", country).Int("line", row.Line()).Msg("programs: repeated country, last row wins")
		}
		tags := make([]dom.Tag, 0, len(dom.FlagTags))
		for _, t := range dom.FlagTags {
			if FlagSet(row.Get(string(t))) {
				tags = append(tags, t)
			}
		}
		out[country] = tags
		return nil
	})

	stats.Countries = len(out)
	warnSkipped(ctx, stats)
	return out, stats, nil
}

func load(src Source, cols ...string) (*sheet.Table, error) {
	tbl, err := open(src.Path, sheet.Options{Sheet: src.Sheet})
	if err != nil {
		return nil, err
	}
	if err := tbl.Require(cols...); err != nil {
		return nil, err
	}
	return tbl, nil
}

func warnSkipped(ctx context.Context, st dom.LoadStats) {
	if st.SkippedRows == 0 {
		return
	}
	logger.C(ctx).Warn().
		Str("path", st.Path).
		Int("skipped", st.SkippedRows).
		Msg("rows with a blank Country were skipped")
}

// YearKey renders a Year cell as a map key. Integral numbers lose any fractional
// part ("2020.0" -> "2020"); other text is trimmed and kept
func YearKey(cell string) string {
	s := strings.TrimSpace(cell)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return s
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FlagSet reports whether a flag cell holds the truthy sentinel: numeric 1 or TRUE
func FlagSet(cell string) bool {
	s := strings.TrimSpace(cell)
	if strings.EqualFold(s, "true") {
		return true
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && f == 1
}
