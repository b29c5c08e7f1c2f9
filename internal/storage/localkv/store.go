// Package localkv is a durable string-keyed store for whole serialized
// collections. The unit of atomicity is one key's entire value: callers
// rewrite a full collection on every persist, never a single record.
package localkv

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/daryllundy/resume-builder-sub000/pkg/logger"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

// Open creates (or opens) the backing sqlite file. Use ":memory:" for tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store %q: %w", path, err)
	}
	// Single logical writer; see the repository-level mutex.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("init store schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Delete removes a key. Missing keys are a no-op.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}

func (s *Store) get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Read returns the decoded value stored under key, or def when the key is
// absent or its value cannot be decoded. Reads fail soft: a corrupt or
// unreadable value degrades to the default and a logged warning, favoring
// availability over strict consistency.
func Read[T any](s *Store, key string, def T) T {
	raw, ok, err := s.get(key)
	if err != nil {
		logger.Log.Warn("localkv read failed, using default", "key", key, "error", err)
		return def
	}
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		logger.Log.Warn("localkv value corrupt, using default", "key", key, "error", err)
		return def
	}
	return v
}

// Write serializes v and upserts it under key. Unlike reads, write failure is
// explicit: callers decide whether to surface or ignore it.
func Write[T any](s *Store, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(data),
	)
	if err != nil {
		return fmt.Errorf("persist %q: %w", key, err)
	}
	return nil
}
