package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cockroachdb/pebble"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const treeKeyPrefix = "tree/"

// PebbleStore implements Store using CockroachDB's Pebble embedded key-value store
type PebbleStore struct {
	db  *pebble.DB
	log *slog.Logger
}

// NewPebbleStore opens (or creates) a database at path. opts may be nil.
func NewPebbleStore(path string, opts *pebble.Options, log *slog.Logger) (*PebbleStore, error) {
	if opts == nil {
		opts = &pebble.Options{}
	}
	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble database: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &PebbleStore{db: db, log: log.With("store", "pebble")}, nil
}

func (s *PebbleStore) Put(ctx context.Context, key string, data []byte) error {
	_, span := otel.Tracer("store").Start(ctx, "PebbleStore.Put")
	defer span.End()
	span.SetAttributes(attribute.String("key", key), attribute.Int("size", len(data)))

	if key == "" {
		return fmt.Errorf("invalid store key: %q", key)
	}
	if err := s.db.Set([]byte(treeKeyPrefix+key), data, pebble.Sync); err != nil {
		return fmt.Errorf("pebble set: %w", err)
	}
	s.log.Debug("stored blob", "key", key, "size", len(data))
	return nil
}

func (s *PebbleStore) Get(ctx context.Context, key string) ([]byte, error) {
	_, span := otel.Tracer("store").Start(ctx, "PebbleStore.Get")
	defer span.End()
	span.SetAttributes(attribute.String("key", key))

	val, closer, err := s.db.Get([]byte(treeKeyPrefix + key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("pebble get: %w", err)
	}
	defer closer.Close()

	// value is only valid until closer is closed
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (s *PebbleStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
