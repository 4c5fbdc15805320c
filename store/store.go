// Package store provides byte sinks and sources for persisted trees
package store

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found in store")

// Store writes and reads whole byte blobs by key. Encoded trees are opaque to it.
type Store interface {
	// Replace the blob stored at key
	Put(ctx context.Context, key string, data []byte) error

	// Read the full blob stored at key; ErrNotFound if absent
	Get(ctx context.Context, key string) ([]byte, error)

	// Release any underlying resources
	Close() error
}
