// Package cache provides the string-keyed key-value store the quote and rate
// snapshots are persisted to. The store only preserves plain text; callers
// serialize their own structures and reconstruct typed fields on read.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound is returned by Get when the key has never been written or
// has been removed.
var ErrKeyNotFound = errors.New("key not found")

// Cache is a plain string get/set/remove collaborator. There is no
// compare-and-swap: concurrent writers race and the last write wins.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiry time.Duration) error
	Remove(ctx context.Context, key string) error
}
