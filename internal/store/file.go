package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileStore persists each key as a file under a profile directory. It
// is the default backend and mirrors per-origin browser storage: one
// profile directory, one value per key, plain text on disk.
type FileStore struct {
	dir    string
	logger *zap.Logger
}

// NewFileStore creates the profile directory if needed and returns a
// store over it.
func NewFileStore(dir string, logger *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profile directory: %w", err)
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key)
}

// Read returns the value stored for key. Any failure to read the
// medium is reported as absence.
func (s *FileStore) Read(ctx context.Context, key string) (string, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("Profile read failed, treating key as absent",
				zap.String("key", key),
				zap.Error(err),
			)
		}
		return "", ErrAbsent
	}
	return string(data), nil
}

// Write persists value under key synchronously.
func (s *FileStore) Write(ctx context.Context, key, value string) error {
	if err := os.WriteFile(s.path(key), []byte(value), 0o644); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}
