// Package profile owns the client profile lifecycle: resolving the seed
// record against a stored override, editing it through a form, and
// committing edits back to durable storage.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/smileynet/vetprofile/internal/contact"
	"github.com/smileynet/vetprofile/internal/kv"
)

// DefaultKey is the storage key holding the override record.
const DefaultKey = "clientProfile"

var (
	// ErrWriteFailed indicates a commit could not be persisted.
	ErrWriteFailed = errors.New("profile: write failed")
	// ErrMalformedRecord indicates a stored value is not a JSON object.
	ErrMalformedRecord = errors.New("profile: malformed stored record")
)

// Store is the single source of truth for reading and writing the
// client's contact record.
type Store struct {
	storage kv.Storage
	seed    contact.Record
	key     string
	log     *zap.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithKey overrides the storage key (default DefaultKey).
func WithKey(key string) StoreOption {
	return func(s *Store) {
		s.key = key
	}
}

// WithLogger sets the logger used for recoverable conditions.
func WithLogger(l *zap.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// NewStore creates a Store over storage. seed is the fallback for any
// field the stored override does not supply.
func NewStore(storage kv.Storage, seed contact.Record, opts ...StoreOption) *Store {
	s := &Store{
		storage: storage,
		seed:    seed,
		key:     DefaultKey,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed returns the seed record.
func (s *Store) Seed() contact.Record {
	return s.seed
}

// Key returns the storage key of the override record.
func (s *Store) Key() string {
	return s.key
}

// Load returns the authoritative record. Without a stored override it is
// the seed. A stored override that is not a JSON object is ignored and left
// in place. Otherwise each editable field the override carries as a string
// replaces the seed's; PhotoURL always comes from the seed.
func (s *Store) Load() contact.Record {
	raw, found, err := s.storage.Get(s.key)
	if err != nil {
		s.log.Error("reading stored profile", zap.String("key", s.key), zap.Error(err))
		return s.seed
	}
	if !found {
		return s.seed
	}

	r, err := decodeOverride(s.seed, raw)
	if err != nil {
		s.log.Warn("ignoring stored profile", zap.String("key", s.key), zap.Error(err))
		return s.seed
	}
	return r
}

// Commit persists the editable fields of r under the store key in a single
// write. PhotoURL is never written. Failures wrap ErrWriteFailed.
func (s *Store) Commit(r contact.Record) error {
	data, err := json.Marshal(r.Editable())
	if err != nil {
		return fmt.Errorf("%w: encoding: %w", ErrWriteFailed, err)
	}

	if err := s.storage.Set(s.key, string(data)); err != nil {
		s.log.Error("saving profile", zap.String("key", s.key), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	s.log.Info("profile saved",
		zap.String("key", s.key),
		zap.String("name", r.Name),
		zap.String("email", r.Email),
		zap.String("phone", r.Phone),
	)
	return nil
}

// decodeOverride overlays a stored JSON object onto seed.
func decodeOverride(seed contact.Record, raw string) (contact.Record, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return contact.Record{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	// "null" decodes without error into a nil map.
	if fields == nil {
		return contact.Record{}, fmt.Errorf("%w: not a JSON object", ErrMalformedRecord)
	}
	return contact.Overlay(seed, fields), nil
}
