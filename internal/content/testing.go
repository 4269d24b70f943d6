package content

import (
	"context"
	"slices"

	"github.com/rizkyriyadi/noval-quex/internal/catalog"
	"github.com/rizkyriyadi/noval-quex/internal/store"
)

// FakeStore is an in-memory Store for tests. It honours the same query
// shape as the real client: equality filters, one descending sort
// field, and a limit. This should only be used in tests.
type FakeStore struct {
	Props    []catalog.Property
	Articles []catalog.NewsArticle

	ReadErr  error
	WriteErr error

	Contacts      []catalog.ContactSubmission
	Subscriptions []catalog.NewsletterSubscription
}

// Properties implements Store.
func (f *FakeStore) Properties(_ context.Context, q store.Query) ([]catalog.Property, error) {
	if f.ReadErr != nil {
		return nil, f.ReadErr
	}

	var out []catalog.Property
	for _, p := range f.Props {
		if !matchProperty(p, q.Filter) {
			continue
		}
		out = append(out, p)
	}

	if q.SortBy == "createdAt" {
		slices.SortStableFunc(out, func(a, b catalog.Property) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}
	if q.Limit > 0 && int64(len(out)) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

// News implements Store.
func (f *FakeStore) News(_ context.Context, q store.Query) ([]catalog.NewsArticle, error) {
	if f.ReadErr != nil {
		return nil, f.ReadErr
	}

	var out []catalog.NewsArticle
	for _, n := range f.Articles {
		if slug, ok := q.Filter["slug"]; ok && n.Slug != slug {
			continue
		}
		out = append(out, n)
	}

	if q.SortBy == "publishedAt" {
		slices.SortStableFunc(out, func(a, b catalog.NewsArticle) int {
			return b.PublishedAt.Compare(a.PublishedAt)
		})
	}
	if q.Limit > 0 && int64(len(out)) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

// InsertContact implements Store.
func (f *FakeStore) InsertContact(_ context.Context, sub catalog.ContactSubmission) error {
	if f.WriteErr != nil {
		return f.WriteErr
	}
	f.Contacts = append(f.Contacts, sub)
	return nil
}

// InsertSubscription implements Store.
func (f *FakeStore) InsertSubscription(_ context.Context, sub catalog.NewsletterSubscription) error {
	if f.WriteErr != nil {
		return f.WriteErr
	}
	f.Subscriptions = append(f.Subscriptions, sub)
	return nil
}

func matchProperty(p catalog.Property, filter map[string]any) bool {
	for k, v := range filter {
		switch k {
		case "slug":
			if p.Slug != v {
				return false
			}
		case "type":
			if string(p.Type) != v {
				return false
			}
		case "featured":
			if p.Featured != v {
				return false
			}
		default:
			return false
		}
	}
	return true
}
