// Package kv implements key-value text storage scoped to a single data
// directory, the terminal counterpart of a browser origin's local storage.
package kv

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Storage reads and writes text values by key.
// A successful Set is visible to every later Get on the same Storage.
type Storage interface {
	// Get returns (value, true, nil) if key is present, ("", false, nil) if absent.
	Get(key string) (string, bool, error)
	// Set replaces the value stored under key.
	Set(key, value string) error
}

// ErrInvalidKey indicates a key is empty or contains path components.
var ErrInvalidKey = errors.New("kv: invalid key")

// validateKey rejects keys that are empty, dot-segments, or contain path separators.
// The rule is shared by every backend so keys stay portable between them.
func validateKey(key string) error {
	if key == "" || key == "." || key == ".." || key != filepath.Base(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
