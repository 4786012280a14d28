// Key/value stash used for small pieces of engine metadata such as the
// schema version stamp.
package sqlite

import (
	"database/sql"
	"fmt"
)

// SetKV stores a value under key, replacing any existing value.
func (s *Store) SetKV(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set kv %q: %w", key, err)
	}
	return nil
}

// GetKV returns the value stored under key, or the empty string when the
// key is absent.
func (s *Store) GetKV(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get kv %q: %w", key, err)
	}
	return value, nil
}
