// Package content is the retrieval layer: every read prefers the live
// content store and degrades to the bundled catalog, every write is a
// single fire-and-forget append.
package content

import (
	"context"
	"errors"

	"github.com/rizkyriyadi/noval-quex/internal/catalog"
	"github.com/rizkyriyadi/noval-quex/internal/store"
)

// ErrNotFound is returned by slug lookups that match nothing in the
// store or the catalog. Callers must render it as a distinct not-found
// state, never as an empty list.
var ErrNotFound = errors.New("not found")

// DefaultNewsLimit is the latest-news count used when none is given.
const DefaultNewsLimit = 3

// User-facing messages for the two write operations.
const (
	msgContactOK       = "Thank you for your message. We will contact you soon!"
	msgContactFailed   = "Failed to submit form. Please try again."
	msgSubscribeOK     = "Successfully subscribed to our newsletter!"
	msgSubscribeFailed = "Failed to subscribe. Please try again."
)

// Store is the slice of the content store client the retrieval layer
// uses. *store.Store satisfies it; tests substitute fakes.
type Store interface {
	Properties(ctx context.Context, q store.Query) ([]catalog.Property, error)
	News(ctx context.Context, q store.Query) ([]catalog.NewsArticle, error)
	InsertContact(ctx context.Context, sub catalog.ContactSubmission) error
	InsertSubscription(ctx context.Context, sub catalog.NewsletterSubscription) error
}

// ContactForm is the user-entered contact form data.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Result is the outcome of a write operation. Write failures surface
// here, never as errors.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Service answers every content request the site makes. It is stateless
// per call; construct one at startup and share it.
type Service struct {
	store   Store
	catalog *catalog.Catalog
}

// New creates a retrieval service. A nil store puts the service in
// catalog-only mode, where every read is answered from the bundle.
func New(st Store, c *catalog.Catalog) *Service {
	return &Service{store: st, catalog: c}
}

// CatalogOnly reports whether the service runs without a live store.
func (s *Service) CatalogOnly() bool {
	return s.store == nil
}

// ListProperties returns every property, newest first.
func (s *Service) ListProperties(ctx context.Context) []catalog.Property {
	if s.store == nil {
		return s.catalog.Properties()
	}
	out := read(ctx, s.store.Properties, store.Query{SortBy: "createdAt"})
	if out.fallbackNeeded() {
		out.logFallback(store.CollProperties)
		return s.catalog.Properties()
	}
	return out.items
}

// ListFeaturedProperties returns the properties marked featured.
func (s *Service) ListFeaturedProperties(ctx context.Context) []catalog.Property {
	if s.store == nil {
		return s.catalog.FeaturedProperties()
	}
	out := read(ctx, s.store.Properties, store.Query{Filter: map[string]any{"featured": true}})
	if out.fallbackNeeded() {
		out.logFallback(store.CollProperties)
		return s.catalog.FeaturedProperties()
	}
	return out.items
}

// ListPropertiesByType returns the properties of one classification.
func (s *Service) ListPropertiesByType(ctx context.Context, t catalog.PropertyType) []catalog.Property {
	if s.store == nil {
		return s.catalog.PropertiesByType(t)
	}
	out := read(ctx, s.store.Properties, store.Query{Filter: map[string]any{"type": string(t)}})
	if out.fallbackNeeded() {
		out.logFallback(store.CollProperties)
		return s.catalog.PropertiesByType(t)
	}
	return out.items
}

// GetPropertyBySlug resolves one property or ErrNotFound.
func (s *Service) GetPropertyBySlug(ctx context.Context, slug string) (catalog.Property, error) {
	if s.store != nil {
		out := read(ctx, s.store.Properties, store.Query{Filter: map[string]any{"slug": slug}})
		if !out.fallbackNeeded() {
			return out.items[0], nil
		}
		out.logFallback(store.CollProperties)
	}

	p, ok := s.catalog.PropertyBySlug(slug)
	if !ok {
		return catalog.Property{}, ErrNotFound
	}
	return p, nil
}

// ListNews returns every article, newest first.
func (s *Service) ListNews(ctx context.Context) []catalog.NewsArticle {
	if s.store == nil {
		return s.catalog.News()
	}
	out := read(ctx, s.store.News, store.Query{SortBy: "publishedAt"})
	if out.fallbackNeeded() {
		out.logFallback(store.CollNews)
		return s.catalog.News()
	}
	return out.items
}

// GetNewsBySlug resolves one article or ErrNotFound.
func (s *Service) GetNewsBySlug(ctx context.Context, slug string) (catalog.NewsArticle, error) {
	if s.store != nil {
		out := read(ctx, s.store.News, store.Query{Filter: map[string]any{"slug": slug}})
		if !out.fallbackNeeded() {
			return out.items[0], nil
		}
		out.logFallback(store.CollNews)
	}

	n, ok := s.catalog.NewsBySlug(slug)
	if !ok {
		return catalog.NewsArticle{}, ErrNotFound
	}
	return n, nil
}

// ListLatestNews returns the newest limit articles. A non-positive
// limit means DefaultNewsLimit.
func (s *Service) ListLatestNews(ctx context.Context, limit int) []catalog.NewsArticle {
	if limit <= 0 {
		limit = DefaultNewsLimit
	}
	if s.store == nil {
		return s.catalog.LatestNews(limit)
	}
	out := read(ctx, s.store.News, store.Query{SortBy: "publishedAt", Limit: int64(limit)})
	if out.fallbackNeeded() {
		out.logFallback(store.CollNews)
		return s.catalog.LatestNews(limit)
	}
	return out.items
}

// ListTestimonials returns the bundled testimonials. There is no live
// collection behind these yet.
func (s *Service) ListTestimonials() []catalog.Testimonial {
	return s.catalog.Testimonials()
}

// ListTeamMembers returns the bundled team members.
func (s *Service) ListTeamMembers() []catalog.TeamMember {
	return s.catalog.TeamMembers()
}
