package profile

import (
	"errors"

	"github.com/smileynet/vetprofile/internal/contact"
	"github.com/smileynet/vetprofile/internal/kv"
)

var testSeed = contact.Record{Name: "Jane Doe", Email: "jane@vet.com", Phone: "", PhotoURL: "p.png"}

var errDiskFull = errors.New("disk full")

// faultyStorage wraps MemoryStorage with injectable read and write errors.
type faultyStorage struct {
	*kv.MemoryStorage
	getErr error
	setErr error
	sets   int
}

func newFaultyStorage() *faultyStorage {
	return &faultyStorage{MemoryStorage: kv.NewMemoryStorage()}
}

func (s *faultyStorage) Get(key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	return s.MemoryStorage.Get(key)
}

func (s *faultyStorage) Set(key, value string) error {
	s.sets++
	if s.setErr != nil {
		return s.setErr
	}
	return s.MemoryStorage.Set(key, value)
}
