// Schema DDL for the capmind database.
package sqlite

// schemaVersion is the schema generation this build reads and writes. It is
// stamped into the kv table on first initialization; a database stamped with
// a higher version was created by a newer build and is rejected.
const schemaVersion = 1

// kvSchemaVersion is the kv key holding the schema version stamp.
const kvSchemaVersion = "schema_version"

// schemaSQL creates all tables and indexes. Every statement is idempotent so
// initialization is a no-op on an already-initialized database.
const schemaSQL = `CREATE TABLE IF NOT EXISTS memos (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    memo_id    TEXT NOT NULL UNIQUE,
    content    TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS memos_created_at_idx
    ON memos (created_at);
CREATE TABLE IF NOT EXISTS kv (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`
