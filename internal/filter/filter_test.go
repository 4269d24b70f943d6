package filter

import (
	"testing"

	"github.com/rizkyriyadi/noval-quex/internal/catalog"
)

var testProps = []catalog.Property{
	{Slug: "a", Type: catalog.TypeHouse, Title: "Green Valley", Location: "Bandung"},
	{Slug: "b", Type: catalog.TypeVilla, Title: "Blue Horizon", Location: "Bali"},
	{Slug: "c", Type: catalog.TypeApartment, Title: "Sky Suites", Location: "Jakarta"},
}

func slugs(props []catalog.Property) []string {
	var out []string
	for _, p := range props {
		out = append(out, p.Slug)
	}
	return out
}

func equalSlugs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		typeFilter catalog.PropertyType
		query      string
		want       []string
	}{
		{"no filters", catalog.TypeAll, "", []string{"a", "b", "c"}},
		{"empty type treated as all", "", "", []string{"a", "b", "c"}},
		{"type villa", catalog.TypeVilla, "", []string{"b"}},
		{"type house", catalog.TypeHouse, "", []string{"a"}},
		{"search matches title and location", catalog.TypeAll, "ba", []string{"a", "b"}},
		{"search is case insensitive", catalog.TypeAll, "BLUE", []string{"b"}},
		{"type and search combined", catalog.TypeVilla, "bali", []string{"b"}},
		{"type excludes search match", catalog.TypeHouse, "bali", nil},
		{"no match", catalog.TypeAll, "surabaya", nil},
		{"whitespace query matches nothing here", catalog.TypeAll, "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slugs(Apply(testProps, tt.typeFilter, tt.query))
			if !equalSlugs(got, tt.want) {
				t.Errorf("Apply(%q, %q) = %v, want %v", tt.typeFilter, tt.query, got, tt.want)
			}
		})
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	reversed := []catalog.Property{testProps[2], testProps[1], testProps[0]}

	got := slugs(Apply(reversed, catalog.TypeAll, "a"))
	want := []string{"c", "b", "a"}
	if !equalSlugs(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestApplyIdempotent(t *testing.T) {
	once := Apply(testProps, catalog.TypeVilla, "bali")
	twice := Apply(once, catalog.TypeVilla, "bali")

	if !equalSlugs(slugs(once), slugs(twice)) {
		t.Errorf("second application changed result: %v vs %v", slugs(once), slugs(twice))
	}
}

func TestApplyPredicatesCommute(t *testing.T) {
	typeFirst := Apply(Apply(testProps, catalog.TypeVilla, ""), catalog.TypeAll, "bali")
	searchFirst := Apply(Apply(testProps, catalog.TypeAll, "bali"), catalog.TypeVilla, "")

	if !equalSlugs(slugs(typeFirst), slugs(searchFirst)) {
		t.Errorf("predicates do not commute: %v vs %v", slugs(typeFirst), slugs(searchFirst))
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	before := slugs(testProps)
	Apply(testProps, catalog.TypeVilla, "bali")
	after := slugs(testProps)

	if !equalSlugs(before, after) {
		t.Errorf("input mutated: %v vs %v", before, after)
	}
}

func TestApplyWhitespaceQueryCanMatch(t *testing.T) {
	props := []catalog.Property{
		{Slug: "spaced", Type: catalog.TypeHouse, Title: "Twin Oaks Estate", Location: "Kota Baru"},
	}

	// "s e" occurs inside "Oaks Estate"; the untrimmed query is matched literally.
	got := Apply(props, catalog.TypeAll, "s e")
	if len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
}
