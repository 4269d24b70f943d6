package catalog

import "slices"

// Catalog is the bundled fallback dataset. It is immutable after
// construction; every accessor returns a fresh slice so callers can
// filter or sort without touching the bundle.
type Catalog struct {
	properties   []Property
	news         []NewsArticle
	testimonials []Testimonial
	team         []TeamMember
}

// New builds a catalog from the given entities. News is kept ordered by
// PublishedAt descending regardless of input order.
func New(props []Property, news []NewsArticle, testimonials []Testimonial, team []TeamMember) *Catalog {
	c := &Catalog{
		properties:   slices.Clone(props),
		news:         slices.Clone(news),
		testimonials: slices.Clone(testimonials),
		team:         slices.Clone(team),
	}
	slices.SortStableFunc(c.news, func(a, b NewsArticle) int {
		return b.PublishedAt.Compare(a.PublishedAt)
	})
	return c
}

// Properties returns every bundled property, newest first.
func (c *Catalog) Properties() []Property {
	return slices.Clone(c.properties)
}

// FeaturedProperties returns the bundled properties marked featured.
func (c *Catalog) FeaturedProperties() []Property {
	var out []Property
	for _, p := range c.properties {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// PropertyBySlug looks up a bundled property by slug.
func (c *Catalog) PropertyBySlug(slug string) (Property, bool) {
	for _, p := range c.properties {
		if p.Slug == slug {
			return p, true
		}
	}
	return Property{}, false
}

// PropertiesByType returns the bundled properties of the given type.
func (c *Catalog) PropertiesByType(t PropertyType) []Property {
	var out []Property
	for _, p := range c.properties {
		if p.Type == t {
			out = append(out, p)
		}
	}
	return out
}

// News returns every bundled article, newest first.
func (c *Catalog) News() []NewsArticle {
	return slices.Clone(c.news)
}

// NewsBySlug looks up a bundled article by slug.
func (c *Catalog) NewsBySlug(slug string) (NewsArticle, bool) {
	for _, n := range c.news {
		if n.Slug == slug {
			return n, true
		}
	}
	return NewsArticle{}, false
}

// LatestNews returns the newest limit articles.
func (c *Catalog) LatestNews(limit int) []NewsArticle {
	if limit <= 0 || limit > len(c.news) {
		limit = len(c.news)
	}
	return slices.Clone(c.news[:limit])
}

// Testimonials returns the bundled testimonials.
func (c *Catalog) Testimonials() []Testimonial {
	return slices.Clone(c.testimonials)
}

// TeamMembers returns the bundled team members.
func (c *Catalog) TeamMembers() []TeamMember {
	return slices.Clone(c.team)
}
