// Package catalog provides the content entity types and the bundled
// fallback dataset shipped with the site.
package catalog

import "time"

// PropertyType classifies a listed property.
type PropertyType string

const (
	TypeHouse     PropertyType = "house"
	TypeApartment PropertyType = "apartment"
	TypeVilla     PropertyType = "villa"

	// TypeAll is the listing-filter wildcard, never stored on a property.
	TypeAll PropertyType = "all"
)

// ValidPropertyType returns true if s is a known property classification.
func ValidPropertyType(s string) bool {
	switch PropertyType(s) {
	case TypeHouse, TypeApartment, TypeVilla:
		return true
	}
	return false
}

// Property represents a development project listed on the site.
// Prices are whole rupiah. Slug is the URL identity; ID is whatever
// the content store assigned (or a bundle ordinal for catalog entries).
type Property struct {
	ID          string       `bson:"-" json:"id"`
	Title       string       `bson:"title" json:"title"`
	Slug        string       `bson:"slug" json:"slug"`
	Type        PropertyType `bson:"type" json:"type"`
	Price       int64        `bson:"price" json:"price"`
	Location    string       `bson:"location" json:"location"`
	Bedrooms    int          `bson:"bedrooms" json:"bedrooms"`
	Bathrooms   int          `bson:"bathrooms" json:"bathrooms"`
	Area        int          `bson:"area" json:"area"`
	Image       string       `bson:"image" json:"image"`
	Images      []string     `bson:"images,omitempty" json:"images,omitempty"`
	Featured    bool         `bson:"featured" json:"featured"`
	Description string       `bson:"description" json:"description"`
	Amenities   []string     `bson:"amenities,omitempty" json:"amenities,omitempty"`
	CreatedAt   time.Time    `bson:"createdAt" json:"createdAt,omitempty"`
}
