// Package domain defines the core types and ports of the program data build
package domain

// Tag labels a talent program a country participates in
type Tag string

// The fixed tag set, in emission order
const (
	TagBIG     Tag = "BIG"
	TagNATIONS Tag = "NATIONS"
	TagEXCL    Tag = "EXCL"
	TagSTAR    Tag = "STAR"
)

// FlagTags are the tags driven by program-sheet flag columns, in emission order.
// The column header equals the tag string
var FlagTags = []Tag{TagNATIONS, TagEXCL, TagSTAR}

// Valid reports whether t is one of the four known tags
func (t Tag) Valid() bool {
	switch t {
	case TagBIG, TagNATIONS, TagEXCL, TagSTAR:
		return true
	}
	return false
}

// Scholars groups scholar names by country, then by year (string key), in encounter order
type Scholars map[string]map[string][]string

// Programs maps a country to its flag-driven tags, in FlagTags order
type Programs map[string][]Tag

// Record is one country entry of the output document
type Record struct {
	Programs    []Tag               `json:"programs"`
	Lat         *float64            `json:"lat,omitempty"`
	Lng         *float64            `json:"lng,omitempty"`
	BigScholars map[string][]string `json:"bigScholars,omitempty"`
}

// Document is the full output keyed by canonical country name
type Document map[string]Record

// LoadStats describes one loader pass
type LoadStats struct {
	Path        string
	Rows        int // non-blank data rows read
	SkippedRows int // rows dropped for a blank country
	Countries   int
}

// Summary describes a completed build
type Summary struct {
	RunID      string
	OutputPath string
	Countries  int
	Scholars   LoadStats
	Programs   LoadStats
	Unmapped   []string // countries written without coordinates, sorted
	Bytes      int
}
