package repository

import "context"

// Meta defines the interface for the key-value metadata store that holds
// board message identity between restarts.
type Meta interface {
	// Get returns the value for key. The bool reports presence; an absent
	// key is not an error.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set upserts the value for key.
	Set(ctx context.Context, key, value string) error
	// Delete removes key if present.
	Delete(ctx context.Context, key string) error
}
