package content

import (
	"context"
	"log/slog"

	"github.com/rizkyriyadi/noval-quex/internal/store"
)

// outcome is the tagged result of one store read: a non-empty list, an
// empty list, or an error. Keeping all three apart makes the fallback
// decision an explicit policy instead of a side effect.
type outcome[T any] struct {
	items []T
	err   error
}

// read runs one store query and wraps the result.
func read[T any](ctx context.Context, fn func(context.Context, store.Query) ([]T, error), q store.Query) outcome[T] {
	items, err := fn(ctx, q)
	return outcome[T]{items: items, err: err}
}

// fallbackNeeded is the fallback policy. The bundled catalog stands in
// when the store errors, and also when the query matched nothing: an
// empty store is treated as not-yet-populated rather than legitimately
// empty. A store that is intentionally emptied will therefore still
// serve bundled content.
func (o outcome[T]) fallbackNeeded() bool {
	return o.err != nil || len(o.items) == 0
}

// logFallback records why the bundle is being served. Errors are worth
// alerting on; empty collections are routine before first seed.
func (o outcome[T]) logFallback(collection string) {
	if o.err != nil {
		slog.Error("store read failed, serving bundled catalog",
			"collection", collection, "error", o.err)
		return
	}
	slog.Debug("store collection empty, serving bundled catalog",
		"collection", collection)
}
