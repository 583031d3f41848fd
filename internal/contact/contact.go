// Package contact defines the client contact record, its bundled seed,
// and the per-field rules for materializing a record from stored JSON.
package contact

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
)

// SeedFile is the name of the bundled seed resource.
const SeedFile = "client_profile.json"

// Placeholders shown in place of empty display fields.
const (
	NamePlaceholder  = "No name"
	EmailPlaceholder = "No email"
)

// ErrInvalidSeed indicates the bundled seed resource could not be used.
var ErrInvalidSeed = errors.New("contact: invalid seed")

// Record is the client's contact record.
// PhotoURL is display-only and always sourced from the seed.
type Record struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	PhotoURL string `json:"photoUrl"`
}

// Editable is the persisted subset of a Record.
type Editable struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Editable returns the fields a user can change.
func (r Record) Editable() Editable {
	return Editable{Name: r.Name, Email: r.Email, Phone: r.Phone}
}

// DisplayName returns the name or NamePlaceholder when it is empty.
func (r Record) DisplayName() string {
	return OrPlaceholder(r.Name, NamePlaceholder)
}

// DisplayEmail returns the email or EmailPlaceholder when it is empty.
func (r Record) DisplayEmail() string {
	return OrPlaceholder(r.Email, EmailPlaceholder)
}

// OrPlaceholder returns value, or placeholder when value is empty.
func OrPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

// ParseSeed decodes a seed resource. The document must be a JSON object;
// absent keys become empty strings.
func ParseSeed(data []byte) (Record, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	if fields == nil {
		return Record{}, fmt.Errorf("%w: not a JSON object", ErrInvalidSeed)
	}

	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	return r, nil
}

// LoadSeed reads and parses SeedFile from fsys.
func LoadSeed(fsys fs.FS) (Record, error) {
	data, err := fs.ReadFile(fsys, SeedFile)
	if err != nil {
		return Record{}, fmt.Errorf("contact: reading %s: %w", SeedFile, err)
	}
	return ParseSeed(data)
}

// Overlay returns base with each editable field replaced by the value
// stored under the same key in fields. Keys that are missing, null, or not
// JSON strings keep the base value. PhotoURL is never overlaid.
func Overlay(base Record, fields map[string]json.RawMessage) Record {
	r := base
	overlayString(fields, "name", &r.Name)
	overlayString(fields, "email", &r.Email)
	overlayString(fields, "phone", &r.Phone)
	return r
}

func overlayString(fields map[string]json.RawMessage, key string, dst *string) {
	raw, ok := fields[key]
	if !ok {
		return
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		return
	}
	*dst = *s
}
