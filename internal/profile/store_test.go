package profile

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/smileynet/vetprofile/internal/contact"
	"github.com/smileynet/vetprofile/internal/kv"
)

func TestStore_LoadEmptyReturnsSeed(t *testing.T) {
	// Given a store with nothing persisted
	store := NewStore(kv.NewMemoryStorage(), testSeed)

	// When Load is called
	got := store.Load()

	// Then the seed is returned verbatim
	if got != testSeed {
		t.Errorf("Load() = %+v, want %+v", got, testSeed)
	}
}

func TestStore_LoadCorruptReturnsSeed(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "not json", value: "{not json"},
		{name: "empty", value: ""},
		{name: "array", value: `["Ana"]`},
		{name: "string", value: `"Ana"`},
		{name: "number", value: "42"},
		{name: "null", value: "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given a corrupt value at the profile key
			storage := kv.NewMemoryStorage()
			if err := storage.Set(DefaultKey, tt.value); err != nil {
				t.Fatal(err)
			}
			store := NewStore(storage, testSeed)

			// When Load is called
			got := store.Load()

			// Then the seed is returned and the stored value is untouched
			if got != testSeed {
				t.Errorf("Load() = %+v, want seed %+v", got, testSeed)
			}
			v, found, err := storage.Get(DefaultKey)
			if err != nil || !found || v != tt.value {
				t.Errorf("stored value = %q, %v, %v; want %q untouched", v, found, err, tt.value)
			}
		})
	}
}

func TestStore_LoadCorruptLogsWarning(t *testing.T) {
	// Given a store with an observed logger and a corrupt value
	core, logs := observer.New(zapcore.DebugLevel)
	storage := kv.NewMemoryStorage()
	if err := storage.Set(DefaultKey, "{not json"); err != nil {
		t.Fatal(err)
	}
	store := NewStore(storage, testSeed, WithLogger(zap.New(core)))

	// When Load is called
	store.Load()

	// Then one warning names the key
	entries := logs.FilterLevelExact(zapcore.WarnLevel).All()
	if len(entries) != 1 {
		t.Fatalf("warn entries = %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["key"]; got != DefaultKey {
		t.Errorf("logged key = %v, want %q", got, DefaultKey)
	}

	// And the logged error is a malformed-record error
	var logged error
	for _, f := range entries[0].Context {
		if err, ok := f.Interface.(error); ok && f.Key == "error" {
			logged = err
		}
	}
	if !errors.Is(logged, ErrMalformedRecord) {
		t.Errorf("logged error = %v, want ErrMalformedRecord", logged)
	}
}

func TestStore_LoadReadErrorReturnsSeed(t *testing.T) {
	storage := newFaultyStorage()
	storage.getErr = errors.New("permission denied")
	store := NewStore(storage, testSeed)

	if got := store.Load(); got != testSeed {
		t.Errorf("Load() = %+v, want seed %+v", got, testSeed)
	}
}

func TestStore_LoadPartialFallsBackPerField(t *testing.T) {
	// Given an override that carries only the phone
	storage := kv.NewMemoryStorage()
	if err := storage.Set(DefaultKey, `{"phone":"555-0100","extra":true}`); err != nil {
		t.Fatal(err)
	}
	store := NewStore(storage, testSeed)

	// When Load is called
	got := store.Load()

	// Then the phone comes from the override and the rest from the seed
	want := contact.Record{Name: "Jane Doe", Email: "jane@vet.com", Phone: "555-0100", PhotoURL: "p.png"}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestStore_CommitRoundTrip(t *testing.T) {
	tests := []contact.Record{
		{Name: "Ana Mora", Email: "ana@vet.com", Phone: "+506 8888-0000"},
		{Name: "", Email: "", Phone: ""},
		{Name: "Łukasz \"Luke\" Nowak", Email: "not-an-email", Phone: "☎ 12"},
		{Name: "Ana", Email: "ana@vet.com", Phone: "1", PhotoURL: "ignored.png"},
	}
	for _, r := range tests {
		t.Run(r.Name, func(t *testing.T) {
			store := NewStore(kv.NewMemoryStorage(), testSeed)

			if err := store.Commit(r); err != nil {
				t.Fatalf("Commit() error = %v", err)
			}
			got := store.Load()

			if got.Name != r.Name || got.Email != r.Email || got.Phone != r.Phone {
				t.Errorf("Load() = %+v, want editable fields of %+v", got, r)
			}
			if got.PhotoURL != testSeed.PhotoURL {
				t.Errorf("PhotoURL = %q, want seed %q", got.PhotoURL, testSeed.PhotoURL)
			}
		})
	}
}

func TestStore_CommitWritesEditableFieldsOnly(t *testing.T) {
	storage := kv.NewMemoryStorage()
	store := NewStore(storage, testSeed)

	if err := store.Commit(contact.Record{Name: "Ana", Email: "a@b.com", Phone: "1", PhotoURL: "x.png"}); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	raw, _, _ := storage.Get(DefaultKey)
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("stored value is not JSON: %v", err)
	}
	if _, ok := doc["photoUrl"]; ok {
		t.Errorf("stored value %s contains photoUrl", raw)
	}
	for _, key := range []string{"name", "email", "phone"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("stored value %s missing %q", raw, key)
		}
	}
}

func TestStore_CommitIdempotent(t *testing.T) {
	// Given two stores, one committed once and one twice
	r := contact.Record{Name: "Ana", Email: "ana@vet.com", Phone: "555"}
	onceStorage := kv.NewMemoryStorage()
	twiceStorage := kv.NewMemoryStorage()
	once := NewStore(onceStorage, testSeed)
	twice := NewStore(twiceStorage, testSeed)

	if err := once.Commit(r); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if err := twice.Commit(r); err != nil {
			t.Fatal(err)
		}
	}

	// Then durable state and Load results match
	v1, _, _ := onceStorage.Get(DefaultKey)
	v2, _, _ := twiceStorage.Get(DefaultKey)
	if v1 != v2 {
		t.Errorf("stored values differ: %q vs %q", v1, v2)
	}
	if once.Load() != twice.Load() {
		t.Errorf("Load() differs: %+v vs %+v", once.Load(), twice.Load())
	}
}

func TestStore_CommitWriteFailure(t *testing.T) {
	storage := newFaultyStorage()
	storage.setErr = errDiskFull
	store := NewStore(storage, testSeed)

	err := store.Commit(testSeed)

	if !errors.Is(err, ErrWriteFailed) {
		t.Errorf("Commit() error = %v, want ErrWriteFailed", err)
	}
	if !errors.Is(err, errDiskFull) {
		t.Errorf("Commit() error = %v, want wrapped storage error", err)
	}
}

func TestStore_WithKey(t *testing.T) {
	storage := kv.NewMemoryStorage()
	store := NewStore(storage, testSeed, WithKey("otherProfile"))

	if err := store.Commit(contact.Record{Name: "Ana"}); err != nil {
		t.Fatal(err)
	}

	if store.Key() != "otherProfile" {
		t.Errorf("Key() = %q, want %q", store.Key(), "otherProfile")
	}
	if _, found, _ := storage.Get(DefaultKey); found {
		t.Error("default key written despite WithKey")
	}
	if _, found, _ := storage.Get("otherProfile"); !found {
		t.Error("custom key not written")
	}
}

func TestStore_FileBackedScenarios(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		// Given a file-backed store with no prior commit
		dir := t.TempDir()
		store := NewStore(kv.NewFileStorage(dir), testSeed)
		if got := store.Load(); got != testSeed {
			t.Fatalf("Load() = %+v, want seed", got)
		}

		// When a form edits the phone and saves
		form := NewForm(store)
		form.SetPhone("555-0100")
		if err := form.Save(); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		// Then a fresh store over the same directory sees the edit
		reopened := NewStore(kv.NewFileStorage(dir), testSeed)
		want := contact.Record{Name: "Jane Doe", Email: "jane@vet.com", Phone: "555-0100", PhotoURL: "p.png"}
		if got := NewForm(reopened).Record(); got != want {
			t.Errorf("reloaded = %+v, want %+v", got, want)
		}
	})

	t.Run("corrupted store", func(t *testing.T) {
		// Given the literal text {not json at the profile key
		dir := t.TempDir()
		storage := kv.NewFileStorage(dir)
		if err := storage.Set(DefaultKey, "{not json"); err != nil {
			t.Fatal(err)
		}
		store := NewStore(storage, testSeed)

		// When Load is called
		got := store.Load()

		// Then the seed is returned and the file is unchanged
		if got != testSeed {
			t.Errorf("Load() = %+v, want seed", got)
		}
		v, _, err := kv.NewFileStorage(filepath.Clean(dir)).Get(DefaultKey)
		if err != nil || v != "{not json" {
			t.Errorf("stored value = %q, %v; want %q", v, err, "{not json")
		}
	})
}
