package normalize

import (
	"testing"
)

func TestName_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{name: "empty", in: "", out: ""},
		{name: "identity ascii", in: "South Africa", out: "South Africa"},
		{name: "identity non-ascii", in: "Türkiye", out: "Türkiye"},
		{name: "nfc composes combining diaeresis", in: "Tu\u0308rkiye", out: "T\u00fcrkiye"},
		{name: "utf8 repair drops invalid bytes", in: string([]byte{'P', 'e', 0xff, 'r', 'u'}), out: "Peru"},
		{name: "remove zero-widths and bom", in: "\uFEFFKe\u200Bnya\u200D", out: "Kenya"},
		{name: "collapse inner whitespace", in: "Costa \t  Rica", out: "Costa Rica"},
		{name: "nbsp counts as space", in: "El\u00A0Salvador", out: "El Salvador"},
		{name: "trim edges", in: "  \n Peru \t", out: "Peru"},
		{name: "case preserved", in: "TURKEY", out: "TURKEY"},
		{name: "punctuation preserved", in: "Hong Kong, China", out: "Hong Kong, China"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Name(tc.in); got != tc.out {
				t.Fatalf("Name(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestKey_Table(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{in: "Turkey", out: "turkey"},
		{in: "  TURKEY ", out: "turkey"},
		{in: "\uFF34\uFF35\uFF32\uFF2B\uFF25\uFF39", out: "turkey"},
		{in: "Türkiye", out: "türkiye"},
		{in: "TÜRKIYE", out: "türkiye"},
		{in: "", out: ""},
	}
	for _, tc := range tests {
		if got := Key(tc.in); got != tc.out {
			t.Fatalf("Key(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestIdempotent(t *testing.T) {
	inputs := []string{
		"Türkiye",
		"  Bosnia   and\tHerzegovina ",
		"Latin America & Ibero-America",
		"\u200BC\u00f4te d'Ivoire",
	}
	for _, in := range inputs {
		once := Name(in)
		if twice := Name(once); twice != once {
			t.Fatalf("Name not idempotent for %q: %q then %q", in, once, twice)
		}
		k := Key(in)
		if k2 := Key(k); k2 != k {
			t.Fatalf("Key not idempotent for %q: %q then %q", in, k, k2)
		}
	}
}
