package kv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Compile-time check: FileStorage satisfies Storage.
var _ Storage = (*FileStorage)(nil)

// FileStorage persists each key as a file under a base directory.
type FileStorage struct {
	baseDir string
}

// NewFileStorage creates a FileStorage that keeps values under baseDir.
func NewFileStorage(baseDir string) *FileStorage {
	return &FileStorage{baseDir: baseDir}
}

// Get reads the value stored under key.
func (s *FileStorage) Get(key string) (string, bool, error) {
	p, err := s.path(key)
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kv: reading %s: %w", p, err)
	}
	return string(data), true, nil
}

// Set writes value under key. The value is written to a temporary file in
// the same directory and renamed into place, so readers never observe a
// partially written value.
func (s *FileStorage) Set(key, value string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return fmt.Errorf("kv: creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.baseDir, "."+key+".*.tmp")
	if err != nil {
		return fmt.Errorf("kv: creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("kv: writing %s: %w", p, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("kv: writing %s: %w", p, err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("kv: replacing %s: %w", p, err)
	}
	return nil
}

// path returns the filesystem path for a key.
func (s *FileStorage) path(key string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	return filepath.Join(s.baseDir, key+".json"), nil
}
