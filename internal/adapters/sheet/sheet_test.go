package sheet

import (
	"os"
	"path/filepath"
	"testing"

	perr "talentmap/internal/platform/errors"
	kit "talentmap/internal/platform/testkit"

	"github.com/google/go-cmp/cmp"
)

type cellRow struct {
	Line              int
	Country, Year, Nm string
}

func collect(t *testing.T, tbl *Table) []cellRow {
	t.Helper()
	var out []cellRow
	err := tbl.Each(func(r Row) error {
		out = append(out, cellRow{Line: r.Line(), Country: r.Get("Country"), Year: r.Get("Year"), Nm: r.Get("Name")})
		return nil
	})
	if err != nil {
		t.Fatalf("Each: %v", err)
	}
	return out
}

func TestOpen_XLSX_RawValuesAndBlankRows(t *testing.T) {
	dir := t.TempDir()
	path := kit.WriteXLSX(t, dir, "scholars.xlsx", "", [][]any{
		{" Country ", "Year", "Name"},
		{"Turkey", 2020, "Ada"},
		{nil, nil, nil},
		{"Kenya", "2021", nil},
		{"Peru", 2019.0, "Bob"},
	})

	tbl, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if tbl.Sheet != "Sheet1" {
		t.Fatalf("Sheet = %q, want Sheet1", tbl.Sheet)
	}
	if err := tbl.Require("Country", "Year", "Name"); err != nil {
		t.Fatalf("Require: %v", err)
	}

	got := collect(t, tbl)
	want := []cellRow{
		{Line: 2, Country: "Turkey", Year: "2020", Nm: "Ada"},
		{Line: 4, Country: "Kenya", Year: "2021", Nm: ""},
		{Line: 5, Country: "Peru", Year: "2019", Nm: "Bob"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestOpen_XLSX_NamedSheet(t *testing.T) {
	dir := t.TempDir()
	path := kit.WriteXLSX(t, dir, "programs.xlsx", "Programs", [][]any{
		{"Country", "NATIONS"},
		{"Kenya", 1},
	})

	tbl, err := Open(path, Options{Sheet: "Programs"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if tbl.Sheet != "Programs" || tbl.Len() != 1 {
		t.Fatalf("table = %+v", tbl)
	}

	_, err = Open(path, Options{Sheet: "Nope"})
	if !perr.IsCode(err, perr.ErrorCodeDataLoad) {
		t.Fatalf("Open(unknown sheet) = %v, want DataLoad", err)
	}
	kit.MustContain(t, err.Error(), `sheet "Nope" not found`)
}

func TestOpen_CSV_BOMAndRaggedRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scholars.csv")
	body := "\uFEFFCountry,Year,Name\nTurkey,2020,Ada\n,,\nKenya,2021\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	tbl, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if tbl.Sheet != "" {
		t.Fatalf("csv has no sheet, got %q", tbl.Sheet)
	}
	if err := tbl.Require("Country", "Year", "Name"); err != nil {
		t.Fatalf("Require: %v", err)
	}
	got := collect(t, tbl)
	want := []cellRow{
		{Line: 2, Country: "Turkey", Year: "2020", Nm: "Ada"},
		{Line: 4, Country: "Kenya", Year: "2021", Nm: ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestOpen_Failures(t *testing.T) {
	dir := t.TempDir()

	notBook := filepath.Join(dir, "broken.xlsx")
	if err := os.WriteFile(notBook, []byte("not a zip"), 0o600); err != nil {
		t.Fatal(err)
	}
	txt := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(txt, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	empty := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(empty, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		path string
		msg  string
	}{
		{name: "missing file", path: filepath.Join(dir, "absent.xlsx"), msg: "file not found"},
		{name: "corrupt workbook", path: notBook, msg: "open workbook"},
		{name: "unsupported type", path: txt, msg: "unsupported file type"},
		{name: "no header", path: empty, msg: "no header row"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Open(tc.path, Options{})
			if !perr.IsCode(err, perr.ErrorCodeDataLoad) {
				t.Fatalf("Open(%s) = %v, want DataLoad", tc.path, err)
			}
			e, _ := perr.As(err)
			if e.Field() != tc.path {
				t.Fatalf("field = %q, want %q", e.Field(), tc.path)
			}
			kit.MustContain(t, err.Error(), tc.msg)
		})
	}
}

func TestRequire_ListsEveryMissingColumn(t *testing.T) {
	dir := t.TempDir()
	path := kit.WriteCSV(t, dir, "programs.csv", [][]any{
		{"Country", "NATIONS"},
		{"Kenya", 1},
	})
	tbl, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	err = tbl.Require("Country", "NATIONS", "EXCL", "STAR")
	if !perr.IsCode(err, perr.ErrorCodeDataLoad) {
		t.Fatalf("Require = %v, want DataLoad", err)
	}
	kit.MustContain(t, err.Error(), `["EXCL", "STAR"]`)
	if !tbl.Has("NATIONS") || tbl.Has("EXCL") {
		t.Fatalf("Has mismatch")
	}
}

func TestDuplicateHeaderFirstWins(t *testing.T) {
	dir := t.TempDir()
	path := kit.WriteCSV(t, dir, "dup.csv", [][]any{
		{"Country", "Country"},
		{"first", "second"},
	})
	tbl, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	var got string
	_ = tbl.Each(func(r Row) error {
		got = r.Get("Country")
		return nil
	})
	if got != "first" {
		t.Fatalf("Get(Country) = %q, want first", got)
	}
}

func TestEach_StopsOnError(t *testing.T) {
	dir := t.TempDir()
	path := kit.WriteCSV(t, dir, "x.csv", [][]any{
		{"Country"},
		{"A"},
		{"B"},
	})
	tbl, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	stop := perr.DataLoadf("stop")
	calls := 0
	err = tbl.Each(func(r Row) error {
		calls++
		return stop
	})
	if err != stop || calls != 1 {
		t.Fatalf("Each err=%v calls=%d", err, calls)
	}
}
