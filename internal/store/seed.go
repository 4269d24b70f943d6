package store

import (
	"context"
	"fmt"

	"github.com/rizkyriyadi/noval-quex/internal/catalog"
)

// SeedCatalog pushes the bundled catalog into the live store so a fresh
// deployment starts with real documents instead of relying on the
// fallback. Existing documents are left alone; this is append-only like
// every other write in the system.
func (s *Store) SeedCatalog(ctx context.Context, c *catalog.Catalog) (int, error) {
	inserted := 0

	props := c.Properties()
	propDocs := make([]interface{}, len(props))
	for i, p := range props {
		propDocs[i] = p
	}
	if len(propDocs) > 0 {
		res, err := s.db.Collection(CollProperties).InsertMany(ctx, propDocs)
		if err != nil {
			return inserted, fmt.Errorf("seeding properties: %w", err)
		}
		inserted += len(res.InsertedIDs)
	}

	news := c.News()
	newsDocs := make([]interface{}, len(news))
	for i, n := range news {
		newsDocs[i] = n
	}
	if len(newsDocs) > 0 {
		res, err := s.db.Collection(CollNews).InsertMany(ctx, newsDocs)
		if err != nil {
			return inserted, fmt.Errorf("seeding news: %w", err)
		}
		inserted += len(res.InsertedIDs)
	}

	return inserted, nil
}
