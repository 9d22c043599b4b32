// Package normalize provides deterministic cleanup of spreadsheet text cells
// Pipeline order for Name
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFC composition (so "Türkiye" and "Türkiye" compare equal)
// 3 Remove format chars (zero-width joiners, BOM, soft hyphen)
// 4 Collapse whitespace (including NBSP) to single spaces and trim
// Key additionally applies case folding and width folding, for case-insensitive lookups
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pools of fresh transformer chains; transformers are stateful and not concurrency safe
var (
	nameChains = sync.Pool{
		New: func() any {
			return transform.Chain(
				norm.NFC,
				runes.Remove(runes.In(unicode.Cf)), // ZWJ ZWNJ FEFF soft hyphen
			)
		},
	}
	keyChains = sync.Pool{
		New: func() any {
			return transform.Chain(
				cases.Fold(),
				width.Fold, // fullwidth forms to ASCII
				norm.NFC,
			)
		},
	}
)

// Name returns the cleaned display form of s. It preserves case and diacritics
func Name(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")
	s = apply(&nameChains, s)
	return collapseSpaces(s)
}

// Key returns the lookup form of s: Name plus case and width folding
func Key(s string) string {
	s = Name(s)
	if s == "" {
		return ""
	}
	return apply(&keyChains, s)
}

func apply(pool *sync.Pool, s string) string {
	tr := pool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	pool.Put(tr)
	if err != nil {
		return s
	}
	return out
}

// collapseSpaces converts every whitespace run to a single ASCII space and trims the edges
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}
