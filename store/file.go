package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// FileStore keeps one file per key in a single directory
type FileStore struct {
	dir string
	log *slog.Logger
}

// NewFileStore creates the directory if needed
func NewFileStore(dir string, log *slog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &FileStore{dir: dir, log: log.With("store", "file", "dir", dir)}, nil
}

func (s *FileStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid store key: %q", key)
	}
	return filepath.Join(s.dir, key), nil
}

// Put writes to a temporary file and renames it in to place, so readers never see partial blobs
func (s *FileStore) Put(ctx context.Context, key string, data []byte) error {
	_, span := otel.Tracer("store").Start(ctx, "FileStore.Put")
	defer span.End()
	span.SetAttributes(attribute.String("key", key), attribute.Int("size", len(data)))

	p, err := s.path(key)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, "."+key+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return err
	}
	s.log.Debug("stored blob", "key", key, "size", len(data))
	return nil
}

func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	_, span := otel.Tracer("store").Start(ctx, "FileStore.Get")
	defer span.End()
	span.SetAttributes(attribute.String("key", key))

	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, err
	}
	return b, nil
}

func (s *FileStore) Close() error {
	return nil
}
