// Package countries holds the static country table used to place records on the map.
// The table is embedded (countries.yaml), parsed once, and read-only afterwards.
// It prepares two lookups: canonical name -> coordinates, and alias key -> canonical name
package countries

import (
	"bytes"
	_ "embed"
	"fmt"
	"maps"
	"slices"
	"sync"

	"talentmap/internal/core/normalize"

	"gopkg.in/yaml.v3"
)

//go:embed countries.yaml
var embedded []byte

// Coordinates is an approximate center point
type Coordinates struct {
	Lat float64 `yaml:"lat" json:"lat"`
	Lng float64 `yaml:"lng" json:"lng"`
}

type rawTable struct {
	Version     int                    `yaml:"version"`
	Coordinates map[string]Coordinates `yaml:"coordinates"`
	Aliases     map[string]string      `yaml:"aliases"`
}

// Table is an immutable country table
type Table struct {
	coords  map[string]Coordinates // canonical name -> center
	aliases map[string]string      // normalize.Key(variant) -> canonical name
	raw     map[string]string      // variant as written -> canonical name
}

// Parse decodes and validates a table document.
// Every alias must point at a canonical name with coordinates, and no alias may
// collide with a canonical name (that would make Normalize non-idempotent)
func Parse(b []byte) (*Table, error) {
	var rt rawTable
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&rt); err != nil {
		return nil, fmt.Errorf("countries: parse: %w", err)
	}
	if rt.Version != 1 {
		return nil, fmt.Errorf("countries: unsupported table version %d (want 1)", rt.Version)
	}
	if len(rt.Coordinates) == 0 {
		return nil, fmt.Errorf("countries: empty coordinates table")
	}

	t := &Table{
		coords:  make(map[string]Coordinates, len(rt.Coordinates)),
		aliases: make(map[string]string, len(rt.Aliases)),
		raw:     make(map[string]string, len(rt.Aliases)),
	}

	canonKeys := make(map[string]string, len(rt.Coordinates))
	for name, c := range rt.Coordinates {
		if clean := normalize.Name(name); clean != name {
			return nil, fmt.Errorf("countries: canonical name %q is not normalized (want %q)", name, clean)
		}
		if c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180 {
			return nil, fmt.Errorf("countries: %q has out of range coordinates (%v, %v)", name, c.Lat, c.Lng)
		}
		t.coords[name] = c
		canonKeys[normalize.Key(name)] = name
	}

	for variant, canon := range rt.Aliases {
		if _, ok := t.coords[canon]; !ok {
			return nil, fmt.Errorf("countries: alias %q points at %q which has no coordinates", variant, canon)
		}
		k := normalize.Key(variant)
		if k == "" {
			return nil, fmt.Errorf("countries: blank alias for %q", canon)
		}
		if other, ok := canonKeys[k]; ok {
			return nil, fmt.Errorf("countries: alias %q collides with canonical name %q", variant, other)
		}
		if prev, ok := t.aliases[k]; ok && prev != canon {
			return nil, fmt.Errorf("countries: alias %q maps to both %q and %q", variant, prev, canon)
		}
		t.aliases[k] = canon
		t.raw[variant] = canon
	}
	return t, nil
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the embedded table. The asset is validated by tests, so a failure here is a build defect
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Parse(embedded)
		if err != nil {
			panic(err)
		}
		defaultTable = t
	})
	return defaultTable
}

// Normalize maps a raw country cell onto its canonical name.
// The cell is cleaned (normalize.Name); if its folded form is a known alias the
// canonical name is returned, otherwise the cleaned cell is returned unchanged
func (t *Table) Normalize(raw string) string {
	clean := normalize.Name(raw)
	if canon, ok := t.aliases[normalize.Key(clean)]; ok {
		return canon
	}
	return clean
}

// Lookup returns the coordinates for an already-normalized name (exact match)
func (t *Table) Lookup(name string) (Coordinates, bool) {
	c, ok := t.coords[name]
	return c, ok
}

// Names returns every canonical name, sorted
func (t *Table) Names() []string {
	return slices.Sorted(maps.Keys(t.coords))
}

// Aliases returns a copy of the alias table as written (variant -> canonical)
func (t *Table) Aliases() map[string]string {
	return maps.Clone(t.raw)
}

// Unmapped returns the distinct names that have no coordinates, sorted
func (t *Table) Unmapped(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	var out []string
	for _, n := range names {
		if _, ok := t.coords[n]; ok {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Normalize maps raw onto a canonical name using the embedded table
func Normalize(raw string) string { return Default().Normalize(raw) }

// Lookup returns coordinates from the embedded table
func Lookup(name string) (Coordinates, bool) { return Default().Lookup(name) }
