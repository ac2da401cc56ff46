// Package export writes cleaned records to a SQLite database so downstream
// alignment jobs can pick them up. The cleaning core itself stays
// persistence-free; this is a CLI collaborator.
package export

import (
	"context"
	"crypto/rand"
	"database/sql"
	"strings"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

// Writer persists cleaned records with ULID identifiers.
type Writer struct {
	db      *sql.DB
	entropy *ulid.MonotonicEntropy
}

// Open opens (or creates) the database at path with WAL mode enabled and
// the records schema initialized.
func Open(ctx context.Context, path string) (*Writer, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Writer{
		db:      db,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// Close closes the database connection.
func (w *Writer) Close() error {
	return w.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS records (
	id TEXT PRIMARY KEY,
	variant TEXT NOT NULL,
	raw TEXT NOT NULL,
	cleaned TEXT NOT NULL,
	token_count INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_records_cleaned ON records(cleaned);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Write stores one cleaned record. Cleaned tokens are stored
// space-joined, which is lossless for pipeline output: cleaned tokens
// contain no whitespace.
func (w *Writer) Write(ctx context.Context, variant, raw string, tokens []string) (string, error) {
	id := ulid.MustNew(ulid.Now(), w.entropy).String()
	_, err := w.db.ExecContext(ctx,
		`INSERT INTO records (id, variant, raw, cleaned, token_count) VALUES (?, ?, ?, ?, ?)`,
		id, variant, raw, strings.Join(tokens, " "), len(tokens),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Count returns the number of stored records.
func (w *Writer) Count(ctx context.Context) (int64, error) {
	var n int64
	err := w.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&n)
	return n, err
}
