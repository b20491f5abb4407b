// internal/words/sqlite.go
//
// SQLite-backed word Source.
// Responsibilities:
//   - Opening the database with safe defaults (busy timeout, WAL).
//   - Creating the words table if missing (idempotent).
//   - Serving lookups by word length and bulk-importing a List.
//
// Schema:
//   words(word TEXT PRIMARY KEY, length INTEGER NOT NULL), indexed on length.

package words

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS words (
	word   TEXT PRIMARY KEY,
	length INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_words_length ON words(length);`

// SQLiteSource serves word lists from a SQLite table.
type SQLiteSource struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) a word database.
func OpenSQLite(dsn string) (*SQLiteSource, error) {
	// Ensure directory exists for ./data/words.db, etc.
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create words table: %w", err)
	}
	return &SQLiteSource{db: db}, nil
}

// Close releases the database handle.
func (s *SQLiteSource) Close() error { return s.db.Close() }

// Words implements Source.
func (s *SQLiteSource) Words(length int) ([]string, error) {
	return s.WordsContext(context.Background(), length)
}

// WordsContext returns all words of a length in insertion order.
func (s *SQLiteSource) WordsContext(ctx context.Context, length int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word FROM words WHERE length=? ORDER BY rowid`, length)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w %d", ErrNoWords, length)
	}
	return out, nil
}

// Count returns the number of stored words of any length.
func (s *SQLiteSource) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return n, nil
}

// Import inserts every word of l, ignoring ones already present.
// Runs inside a single transaction.
func (s *SQLiteSource) Import(ctx context.Context, l List) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words(word, length) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	n := 0
	for _, length := range l.Lengths() {
		for _, w := range l[length] {
			res, err := stmt.ExecContext(ctx, w, length)
			if err != nil {
				return 0, fmt.Errorf("insert %s: %w", w, err)
			}
			if c, _ := res.RowsAffected(); c > 0 {
				n++
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	log.Info().Int("inserted", n).Msg("imported word list")
	return n, nil
}
