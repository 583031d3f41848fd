package kv

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Compile-time check: SQLiteStorage satisfies Storage.
var _ Storage = (*SQLiteStorage)(nil)

// SQLiteStorage persists values in a single-table SQLite database.
type SQLiteStorage struct {
	db *sql.DB
}

// OpenSQLite creates or opens a SQLite database at path and applies the schema.
// Parent directories are created as needed.
//
// The database is configured with:
//   - WAL mode so readers in other processes do not block the writer
//   - FULL synchronous mode, since every Set is a user-visible save
//   - 5-second busy timeout for lock contention
func OpenSQLite(path string) (*SQLiteStorage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("kv: creating directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("kv: opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("kv: connecting to database: %w", err)
	}

	// SQLite only supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("kv: applying schema: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get reads the value stored under key.
func (s *SQLiteStorage) Get(key string) (string, bool, error) {
	if err := validateKey(key); err != nil {
		return "", false, err
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM kv_entries WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kv: reading %q: %w", key, err)
	}
	return value, true, nil
}

// Set upserts value under key in a single statement.
func (s *SQLiteStorage) Set(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("kv: writing %q: %w", key, err)
	}
	return nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = FULL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("kv: executing %q: %w", pragma, err)
		}
	}
	return nil
}
