package lexicon

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/ieee0824/katakana-eigo/phoneme"
)

const schema = `
CREATE TABLE IF NOT EXISTS pronunciations (
	word     TEXT    NOT NULL,
	variant  INTEGER NOT NULL,
	phonemes TEXT    NOT NULL,
	PRIMARY KEY (word, variant)
);
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

const fingerprintKey = "fingerprint"

// Store is a dictionary persisted in SQLite. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the SQLite database at path.
func OpenStore(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Import replaces the stored pronunciations with d in a single transaction
// and records d's fingerprint.
func (s *Store) Import(ctx context.Context, d *Dictionary) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM pronunciations`); err != nil {
		return fmt.Errorf("clear pronunciations: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO pronunciations (word, variant, phonemes) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	words := d.Words()
	sort.Strings(words)
	for _, w := range words {
		for _, e := range d.Entries[w] {
			if _, err := stmt.ExecContext(ctx, e.Word, e.Variant, phoneme.Join(e.Phonemes)); err != nil {
				return fmt.Errorf("insert %s: %w", e.Word, err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO meta (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		fingerprintKey, d.Fingerprint); err != nil {
		return fmt.Errorf("record fingerprint: %w", err)
	}
	return tx.Commit()
}

// Fingerprint returns the fingerprint of the last imported dictionary, or ""
// if nothing has been imported.
func (s *Store) Fingerprint(ctx context.Context) (string, error) {
	var fp string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, fingerprintKey).Scan(&fp)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return fp, err
}

// Pronounce implements Source using the lowest-numbered variant.
func (s *Store) Pronounce(ctx context.Context, word string) ([]phoneme.Phoneme, bool, error) {
	var joined string
	err := s.db.QueryRowContext(ctx,
		`SELECT phonemes FROM pronunciations WHERE word = ? ORDER BY variant LIMIT 1`, word).Scan(&joined)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	ps, err := phoneme.ParseSequence(strings.Fields(joined))
	if err != nil {
		return nil, false, fmt.Errorf("stored pronunciation of %s: %w", word, err)
	}
	return ps, true, nil
}

// Len returns the number of distinct words.
func (s *Store) Len(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT word) FROM pronunciations`).Scan(&n)
	return n, err
}
