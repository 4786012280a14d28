// Package memo defines the memo entity, its normalization rules, and the
// standard errors shared between the storage engine and the CLI.
package memo

import (
	"errors"
	"strings"
	"time"
)

// Validation errors. Returned before any storage operation runs.
var (
	ErrEmptyText = errors.New("memo text is empty")
)

// Storage errors. The storage engine returns these (possibly wrapped with
// context); it never prints or exits. Anything not matching one of the
// sentinels is a plain I/O failure from the filesystem or driver.
var (
	ErrNotFound            = errors.New("memo not found")
	ErrSchemaIncompatible  = errors.New("database schema is incompatible")
	ErrConstraintViolation = errors.New("storage constraint violated")
)

// Memo is a single user-authored note. Memos are immutable after creation:
// there is no update operation, and UpdatedAt always equals CreatedAt.
type Memo struct {
	ID        int64     `json:"id" yaml:"id"`                 // Engine-assigned, strictly increasing.
	MemoID    string    `json:"memo_id" yaml:"memo_id"`       // UUID v7, generated on creation.
	Text      string    `json:"text" yaml:"text"`             // Normalized user text, stored verbatim.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"` // UTC, second precision.
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// Normalize joins raw CLI tokens with single spaces and trims leading and
// trailing whitespace. Interior whitespace within a token is preserved;
// no other mutation (case, encoding) is applied.
// Returns ErrEmptyText if nothing remains after trimming.
func Normalize(args []string) (string, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return "", ErrEmptyText
	}
	return text, nil
}
