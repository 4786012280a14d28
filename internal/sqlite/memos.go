// Memo table operations.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/capmind/capmind/pkg/memo"
)

// Append inserts a new memo with an engine-assigned id and the current UTC
// time at second precision, and returns the fully populated record. The
// insert runs in a single transaction: either the record is fully visible
// afterwards or nothing was written.
func (s *Store) Append(text string) (*memo.Memo, error) {
	if text == "" {
		return nil, memo.ErrEmptyText
	}

	now := time.Now().UTC().Truncate(time.Second)
	ts := now.Format(time.RFC3339)
	memoID := newMemoID()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO memos (memo_id, content, created_at, updated_at) VALUES (?, ?, ?, ?)",
		memoID, text, ts, ts,
	)
	if err != nil {
		if isConstraintErr(err) {
			return nil, fmt.Errorf("%w: %v", memo.ErrConstraintViolation, err)
		}
		return nil, fmt.Errorf("insert memo: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("read assigned id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit memo: %w", err)
	}

	return &memo.Memo{
		ID:        id,
		MemoID:    memoID,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// List returns memos ordered by id ascending, which is insertion order.
// A limit of zero or less returns all memos. The result reflects the stored
// state at call time; repeated calls are restartable reads, not a cursor.
func (s *Store) List(limit int) ([]*memo.Memo, error) {
	q := "SELECT id, memo_id, content, created_at, updated_at FROM memos ORDER BY id ASC"
	var args []any
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query memos: %w", err)
	}
	defer rows.Close()

	memos := make([]*memo.Memo, 0)
	for rows.Next() {
		m, err := scanMemo(rows)
		if err != nil {
			return nil, err
		}
		memos = append(memos, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate memos: %w", err)
	}
	return memos, nil
}

// Get returns the memo with the given id, or memo.ErrNotFound.
func (s *Store) Get(id int64) (*memo.Memo, error) {
	row := s.db.QueryRow(
		"SELECT id, memo_id, content, created_at, updated_at FROM memos WHERE id = ?", id,
	)
	m, err := scanMemo(row)
	if err == sql.ErrNoRows {
		return nil, memo.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get memo %d: %w", id, err)
	}
	return m, nil
}

// Count returns the number of stored memos.
func (s *Store) Count() (int64, error) {
	var n int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM memos").Scan(&n); err != nil {
		return 0, fmt.Errorf("count memos: %w", err)
	}
	return n, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanMemo hydrates one row into a memo, parsing the RFC 3339 timestamps.
func scanMemo(row scanner) (*memo.Memo, error) {
	var (
		m       memo.Memo
		created string
		updated string
	)
	if err := row.Scan(&m.ID, &m.MemoID, &m.Text, &created, &updated); err != nil {
		return nil, err
	}

	var err error
	if m.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", created, err)
	}
	if m.UpdatedAt, err = time.Parse(time.RFC3339, updated); err != nil {
		return nil, fmt.Errorf("parse updated_at %q: %w", updated, err)
	}
	return &m, nil
}

// newMemoID generates a UUID v7 for the memo_id column, falling back to
// UUID v4 if v7 generation fails.
func newMemoID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
