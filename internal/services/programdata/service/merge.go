package service

import (
	"sort"

	dom "talentmap/internal/services/programdata/domain"
)

// Countries returns the sorted union of country keys from both loaders
func Countries(scholars dom.Scholars, programs dom.Programs) []string {
	seen := make(map[string]struct{}, len(scholars)+len(programs))
	for c := range scholars {
		seen[c] = struct{}{}
	}
	for c := range programs {
		seen[c] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Merge builds one record per country in the union of both inputs.
// BIG leads the tag list when the country has scholars; program tags follow in
// their loaded order. Coordinates attach only on an exact table hit
func Merge(scholars dom.Scholars, programs dom.Programs, gaz dom.Gazetteer) dom.Document {
	doc := make(dom.Document, len(scholars)+len(programs))
	for _, c := range Countries(scholars, programs) {
		byYear, hasScholars := scholars[c]

		tags := make([]dom.Tag, 0, 1+len(dom.FlagTags))
		if hasScholars {
			tags = append(tags, dom.TagBIG)
		}
		tags = append(tags, programs[c]...)

		rec := dom.Record{Programs: tags}
		if coords, ok := gaz.Lookup(c); ok {
			lat, lng := coords.Lat, coords.Lng
			rec.Lat, rec.Lng = &lat, &lng
		}
		if hasScholars && len(byYear) > 0 {
			rec.BigScholars = byYear
		}
		doc[c] = rec
	}
	return doc
}
