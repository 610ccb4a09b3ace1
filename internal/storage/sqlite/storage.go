package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mcoot/boggle-go/internal/model"
	"github.com/mcoot/boggle-go/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id         TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE TABLE IF NOT EXISTS dictionary_words (
	word TEXT PRIMARY KEY
);
CREATE TABLE IF NOT EXISTS dictionary_meta (
	id     INTEGER PRIMARY KEY CHECK (id = 1),
	loaded INTEGER NOT NULL
);`

// Storage is a SQLite-backed implementation of the storage interface.
// Sessions are kept as JSON documents keyed by session ID.
type Storage struct {
	db *sql.DB
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// New opens (creating if missing) the database at path and applies the schema.
// Use ":memory:" for a throwaway database.
func New(path string) (*Storage, error) {
	dsn := path
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
		dsn = path + "?_busy_timeout=5000&_journal_mode=WAL"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// An in-memory database is per connection, so pin the pool to one
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	return s.db.Close()
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := storage.EncodeSession(session)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		string(session.ID), string(data), session.UpdatedAt,
	)
	return err
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM sessions WHERE id = ?`, string(id)).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	session, err := storage.DecodeSession([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, string(id))
	return err
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	var loaded int
	err := s.db.QueryRowContext(ctx, `SELECT loaded FROM dictionary_meta WHERE id = 1`).Scan(&loaded)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && loaded == 0) {
		return nil, model.ErrDictionaryNotLoaded
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT word FROM dictionary_words ORDER BY word`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	words := []string{}
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	return words, rows.Err()
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM dictionary_words`); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO dictionary_words (word) VALUES (?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, w := range words {
		if _, err := stmt.ExecContext(ctx, w); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO dictionary_meta (id, loaded) VALUES (1, 1)
		 ON CONFLICT(id) DO UPDATE SET loaded = 1`,
	); err != nil {
		return err
	}

	return tx.Commit()
}
