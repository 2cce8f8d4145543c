// Package blob stores opaque byte values under string keys. It backs the
// local record backend, which keeps the whole record list as one JSON value
// under a fixed key and rewrites it on every mutation.
//
// Two keepers are provided:
//
//   - SQLiteKeeper: a kv table in a local SQLite file; Update runs in one transaction.
//   - S3Keeper: one object per key in an S3-compatible bucket; Update is last-write-wins.
package blob

import "context"

// Keeper is a minimal key-value store for byte blobs.
type Keeper interface {
	// Get returns the stored value, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Update reads the current value (nil when absent), passes it to fn and
	// stores fn's result. If fn fails nothing is written.
	Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error
}
