package countries

import (
	"strings"
	"testing"

	"talentmap/internal/core/normalize"

	"github.com/google/go-cmp/cmp"
)

func TestDefault_LoadsEmbeddedTable(t *testing.T) {
	tbl := Default()
	names := tbl.Names()
	if len(names) != 107 {
		t.Fatalf("embedded table has %d names, want 107", len(names))
	}
	c, ok := tbl.Lookup("Türkiye")
	if !ok || c != (Coordinates{Lat: 38.9637, Lng: 35.2433}) {
		t.Fatalf("Lookup(Türkiye) = %+v, %v", c, ok)
	}
	if _, ok := tbl.Lookup("Turkey"); ok {
		t.Fatalf("Lookup is exact; aliases must not resolve")
	}
	if Default() != tbl {
		t.Fatalf("Default() should return the same instance")
	}
}

func TestNormalize_TurkeyAlwaysMapsToTurkiye(t *testing.T) {
	for _, in := range []string{"Turkey", "turkey", " TURKEY ", "Tur\u200Bkey", "T\u00fcrkiye", "Tu\u0308rkiye"} {
		if got := Normalize(in); got != "Türkiye" {
			t.Fatalf("Normalize(%q) = %q, want Türkiye", in, got)
		}
	}
}

func TestNormalize_EveryAliasResolvesToItsTarget(t *testing.T) {
	tbl := Default()
	aliases := tbl.Aliases()
	if len(aliases) == 0 {
		t.Fatalf("expected at least one alias")
	}
	for variant, canon := range aliases {
		if got := tbl.Normalize(variant); got != canon {
			t.Fatalf("Normalize(%q) = %q, want %q", variant, got, canon)
		}
		if _, ok := tbl.Lookup(canon); !ok {
			t.Fatalf("alias target %q has no coordinates", canon)
		}
	}
}

func TestNormalize_IdempotentOverCanonicalNames(t *testing.T) {
	tbl := Default()
	for _, name := range tbl.Names() {
		if got := tbl.Normalize(name); got != name {
			t.Fatalf("Normalize(%q) = %q, canonical names must be fixed points", name, got)
		}
	}
	for variant := range tbl.Aliases() {
		once := tbl.Normalize(variant)
		if twice := tbl.Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q then %q", variant, once, twice)
		}
	}
}

func TestNormalize_UnknownNamesAreCleanedOnly(t *testing.T) {
	if got := Normalize("  Atlantis\t "); got != "Atlantis" {
		t.Fatalf("Normalize unknown = %q, want Atlantis", got)
	}
	if got := Normalize(""); got != "" {
		t.Fatalf("Normalize(\"\") = %q", got)
	}
}

func TestAliases_ReturnsCopy(t *testing.T) {
	tbl := Default()
	a := tbl.Aliases()
	a["Turkey"] = "Elsewhere"
	if got := tbl.Normalize("Turkey"); got != "Türkiye" {
		t.Fatalf("mutating Aliases() result changed the table: %q", got)
	}
}

func TestUnmapped(t *testing.T) {
	tbl := Default()
	got := tbl.Unmapped([]string{"Türkiye", "Wakanda", "Kenya", "Atlantis", "Wakanda", "Turkey"})
	want := []string{"Atlantis", "Turkey", "Wakanda"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Unmapped mismatch (-want +got):\n%s", diff)
	}
	if got := tbl.Unmapped(tbl.Names()); len(got) != 0 {
		t.Fatalf("every canonical name is mapped, got gap %v", got)
	}
}

func TestEmbeddedNamesAreNormalized(t *testing.T) {
	for _, name := range Default().Names() {
		if normalize.Name(name) != name {
			t.Fatalf("canonical name %q is not in normalized form", name)
		}
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "bad version",
			doc:  "version: 2\ncoordinates:\n  A: {lat: 1, lng: 1}\n",
			want: "unsupported table version",
		},
		{
			name: "empty coordinates",
			doc:  "version: 1\ncoordinates: {}\n",
			want: "empty coordinates",
		},
		{
			name: "unknown field",
			doc:  "version: 1\ncoordinates:\n  A: {lat: 1, lng: 1}\nextra: true\n",
			want: "parse",
		},
		{
			name: "duplicate key",
			doc:  "version: 1\ncoordinates:\n  A: {lat: 1, lng: 1}\n  A: {lat: 2, lng: 2}\n",
			want: "parse",
		},
		{
			name: "out of range",
			doc:  "version: 1\ncoordinates:\n  A: {lat: 91, lng: 1}\n",
			want: "out of range",
		},
		{
			name: "unnormalized canonical",
			doc:  "version: 1\ncoordinates:\n  \"A  B\": {lat: 1, lng: 1}\n",
			want: "not normalized",
		},
		{
			name: "alias without coordinates",
			doc:  "version: 1\ncoordinates:\n  A: {lat: 1, lng: 1}\naliases:\n  X: B\n",
			want: "has no coordinates",
		},
		{
			name: "alias collides with canonical",
			doc:  "version: 1\ncoordinates:\n  A: {lat: 1, lng: 1}\n  B: {lat: 1, lng: 1}\naliases:\n  a: B\n",
			want: "collides",
		},
		{
			name: "alias maps to two targets",
			doc:  "version: 1\ncoordinates:\n  A: {lat: 1, lng: 1}\n  B: {lat: 1, lng: 1}\naliases:\n  X: A\n  x: B\n",
			want: "maps to both",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Parse() error = %v, want containing %q", err, tc.want)
			}
		})
	}
}

func TestParse_Accepts(t *testing.T) {
	doc := "version: 1\ncoordinates:\n  Alpha: {lat: 1.5, lng: -2}\naliases:\n  Alfa: Alpha\n"
	tbl, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := tbl.Normalize("ALFA"); got != "Alpha" {
		t.Fatalf("Normalize(ALFA) = %q", got)
	}
	if c, ok := tbl.Lookup("Alpha"); !ok || c.Lat != 1.5 || c.Lng != -2 {
		t.Fatalf("Lookup(Alpha) = %+v, %v", c, ok)
	}
}
