package store

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildFindFilter(t *testing.T) {
	mfilter, _ := buildFind(Query{Filter: map[string]any{"slug": "green-valley-residence"}})

	if got := mfilter["slug"]; got != "green-valley-residence" {
		t.Errorf("filter[slug] = %v, want green-valley-residence", got)
	}
	if len(mfilter) != 1 {
		t.Errorf("filter has %d keys, want 1", len(mfilter))
	}
}

func TestBuildFindEmptyQuery(t *testing.T) {
	mfilter, opts := buildFind(Query{})

	if len(mfilter) != 0 {
		t.Errorf("filter = %v, want empty", mfilter)
	}
	if opts.Sort != nil {
		t.Errorf("sort = %v, want unset", opts.Sort)
	}
	if opts.Limit != nil {
		t.Errorf("limit = %v, want unset", opts.Limit)
	}
}

func TestBuildFindSortAndLimit(t *testing.T) {
	_, opts := buildFind(Query{SortBy: "createdAt", Limit: 3})

	sort, ok := opts.Sort.(bson.D)
	if !ok {
		t.Fatalf("sort is %T, want bson.D", opts.Sort)
	}
	if len(sort) != 1 || sort[0].Key != "createdAt" || sort[0].Value != -1 {
		t.Errorf("sort = %v, want createdAt descending", sort)
	}
	if opts.Limit == nil || *opts.Limit != 3 {
		t.Errorf("limit = %v, want 3", opts.Limit)
	}
}

func TestConnectRequiresURI(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := Connect(ctx, "", "asridev"); err == nil {
		t.Fatal("expected error for empty URI")
	}
}
