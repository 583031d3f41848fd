package kv

// Compile-time check: MemoryStorage satisfies Storage.
var _ Storage = (*MemoryStorage)(nil)

// MemoryStorage keeps values in a map for the lifetime of the process.
// It is not safe for concurrent use; callers must confine access to a
// single goroutine (e.g., the Bubble Tea update loop).
type MemoryStorage struct {
	values map[string]string
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (s *MemoryStorage) Get(key string) (string, bool, error) {
	if err := validateKey(key); err != nil {
		return "", false, err
	}
	v, ok := s.values[key]
	return v, ok, nil
}

// Set stores value under key, replacing any existing value.
func (s *MemoryStorage) Set(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	s.values[key] = value
	return nil
}
