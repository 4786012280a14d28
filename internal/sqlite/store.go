// Package sqlite implements the SQLite storage engine for capmind memos.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/capmind/capmind/pkg/memo"
)

// Store owns the database file and exposes append, list, and lookup
// operations over memo records. A Store is opened fresh on every process
// invocation; callers must Close it on all exit paths.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the database at path, creating missing parent
// directories, and applies the schema. Initialization is idempotent.
// A file that exists but is not a compatible capmind database yields an
// error wrapping memo.ErrSchemaIncompatible.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database handle. Safe to call on all exit paths.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path this store was opened with.
func (s *Store) Path() string {
	return s.path
}

// init applies the schema and verifies the version stamp. Separate process
// invocations may race on the file; SQLite's own locking serializes them,
// and the busy timeout keeps a briefly locked database from failing the
// whole invocation.
func (s *Store) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return classifyInitErr(err)
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return classifyInitErr(err)
	}
	return s.checkSchemaVersion()
}

// checkSchemaVersion stamps the schema version on first use and rejects
// databases stamped by a newer build.
func (s *Store) checkSchemaVersion() error {
	stored, err := s.GetKV(kvSchemaVersion)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if stored == "" {
		return s.SetKV(kvSchemaVersion, strconv.Itoa(schemaVersion))
	}

	v, err := strconv.Atoi(stored)
	if err != nil || v > schemaVersion {
		return fmt.Errorf("%w: database version %q, this build supports %d",
			memo.ErrSchemaIncompatible, stored, schemaVersion)
	}
	return nil
}

// classifyInitErr maps a driver failure during initialization onto the
// storage error taxonomy. A file that SQLite refuses to treat as a database
// is a schema incompatibility; everything else surfaces as-is.
func classifyInitErr(err error) error {
	if strings.Contains(err.Error(), "not a database") {
		return fmt.Errorf("%w: %v", memo.ErrSchemaIncompatible, err)
	}
	return fmt.Errorf("initialize schema: %w", err)
}

// isConstraintErr reports whether the driver error is a constraint
// violation (duplicate memo_id, NOT NULL break).
func isConstraintErr(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "constraint")
}
