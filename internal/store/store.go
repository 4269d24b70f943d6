// Package store wraps the MongoDB content database. The site reads the
// properties and news collections and appends to contacts and newsletter.
package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/rizkyriyadi/noval-quex/internal/catalog"
)

// Collection names used by the site.
const (
	CollProperties = "properties"
	CollNews       = "news"
	CollContacts   = "contacts"
	CollNewsletter = "newsletter"
)

// Query is the shape of every read this system performs: equality
// filters, at most one descending sort field, and an optional limit.
type Query struct {
	Filter map[string]any
	SortBy string // field to order by, descending; empty = store order
	Limit  int64  // 0 = no limit
}

// Store is the content store client. Construct one per process with
// Connect and inject it where needed.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials the store and verifies it is reachable.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	if uri == "" {
		return nil, fmt.Errorf("store URI is required")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to store: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		if discErr := client.Disconnect(ctx); discErr != nil {
			return nil, fmt.Errorf("pinging store: %w (also failed to disconnect: %v)", err, discErr)
		}
		return nil, fmt.Errorf("pinging store: %w", err)
	}

	return &Store{client: client, db: client.Database(dbName)}, nil
}

// Ping verifies the store is still reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects from the store.
func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnecting from store: %w", err)
	}
	return nil
}

// buildFind translates a Query into a mongo filter and find options.
func buildFind(q Query) (bson.M, *options.FindOptions) {
	mfilter := bson.M{}
	for k, v := range q.Filter {
		mfilter[k] = v
	}

	opts := options.Find()
	if q.SortBy != "" {
		opts.SetSort(bson.D{{Key: q.SortBy, Value: -1}})
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	return mfilter, opts
}

// propertyDoc pairs a stored property with its store-assigned identity.
type propertyDoc struct {
	OID              primitive.ObjectID `bson:"_id,omitempty"`
	catalog.Property `bson:",inline"`
}

// newsDoc pairs a stored article with its store-assigned identity.
type newsDoc struct {
	OID                 primitive.ObjectID `bson:"_id,omitempty"`
	catalog.NewsArticle `bson:",inline"`
}

// Properties runs a read against the properties collection. The
// store-assigned identity is merged into each entity's ID field.
func (s *Store) Properties(ctx context.Context, q Query) ([]catalog.Property, error) {
	mfilter, opts := buildFind(q)

	cur, err := s.db.Collection(CollProperties).Find(ctx, mfilter, opts)
	if err != nil {
		return nil, fmt.Errorf("querying properties: %w", err)
	}

	var docs []propertyDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding properties: %w", err)
	}

	var out []catalog.Property
	for _, d := range docs {
		p := d.Property
		p.ID = d.OID.Hex()
		out = append(out, p)
	}
	return out, nil
}

// News runs a read against the news collection.
func (s *Store) News(ctx context.Context, q Query) ([]catalog.NewsArticle, error) {
	mfilter, opts := buildFind(q)

	cur, err := s.db.Collection(CollNews).Find(ctx, mfilter, opts)
	if err != nil {
		return nil, fmt.Errorf("querying news: %w", err)
	}

	var docs []newsDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding news: %w", err)
	}

	var out []catalog.NewsArticle
	for _, d := range docs {
		n := d.NewsArticle
		n.ID = d.OID.Hex()
		out = append(out, n)
	}
	return out, nil
}

// InsertContact appends a contact submission. CreatedAt and Status are
// assigned here, not by the caller.
func (s *Store) InsertContact(ctx context.Context, sub catalog.ContactSubmission) error {
	sub.CreatedAt = time.Now().UTC()
	sub.Status = "new"

	if _, err := s.db.Collection(CollContacts).InsertOne(ctx, sub); err != nil {
		return fmt.Errorf("inserting contact submission: %w", err)
	}
	return nil
}

// InsertSubscription appends a newsletter subscription with the
// subscription time assigned here.
func (s *Store) InsertSubscription(ctx context.Context, sub catalog.NewsletterSubscription) error {
	sub.SubscribedAt = time.Now().UTC()

	if _, err := s.db.Collection(CollNewsletter).InsertOne(ctx, sub); err != nil {
		return fmt.Errorf("inserting subscription: %w", err)
	}
	return nil
}
