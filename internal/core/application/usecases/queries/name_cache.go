package queries

import "context"

// NameCache caches user display names for read models. Display names change
// rarely and are never part of claim state, so serving them from a cache is
// safe; the job rows themselves are always read live.
//
// Get returns ("", false, nil) on a miss. Cache failures are soft: handlers
// fall back to the database and keep going.
type NameCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
