// Package filter narrows an already-fetched property list for the
// listing page. It never hits the store; it is a pure function over the
// slice the retrieval layer produced.
package filter

import (
	"strings"

	"github.com/rizkyriyadi/noval-quex/internal/catalog"
)

// Apply returns the properties matching both predicates, preserving
// input order.
//
// typeFilter narrows to a single classification; catalog.TypeAll (or
// the empty string) keeps everything. query is matched case-insensitively
// as a substring of the title or the location. The query is deliberately
// not trimmed, so a whitespace-only query matches literally.
func Apply(props []catalog.Property, typeFilter catalog.PropertyType, query string) []catalog.Property {
	result := props

	if typeFilter != "" && typeFilter != catalog.TypeAll {
		result = keep(result, func(p catalog.Property) bool {
			return p.Type == typeFilter
		})
	}

	if query != "" {
		q := strings.ToLower(query)
		result = keep(result, func(p catalog.Property) bool {
			return strings.Contains(strings.ToLower(p.Title), q) ||
				strings.Contains(strings.ToLower(p.Location), q)
		})
	}

	return result
}

func keep(props []catalog.Property, pred func(catalog.Property) bool) []catalog.Property {
	var out []catalog.Property
	for _, p := range props {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
