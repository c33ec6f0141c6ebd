package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite"

	errx "github.com/storefront-poc-v1/client/internal/core/error"
	"github.com/storefront-poc-v1/client/internal/shop/session"
)

// SQLiteSessionStorage keeps the session keys in a local SQLite file, the
// closest analog of browser local storage for a standalone client.
type SQLiteSessionStorage struct {
	db *sql.DB
}

func NewSQLiteSessionStorage(dbPath string) (*SQLiteSessionStorage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errx.WrapStorage(err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS session_store (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, errx.WrapStorage(err)
	}

	return &SQLiteSessionStorage{db: db}, nil
}

func (s *SQLiteSessionStorage) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM session_store WHERE key = ?`, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, errx.WrapStorage(err)
	}
	return value, true, nil
}

func (s *SQLiteSessionStorage) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO session_store (key, value, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(key)
		 DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return errx.WrapStorage(err)
	}
	return nil
}

func (s *SQLiteSessionStorage) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if _, err := s.db.ExecContext(ctx,
			`DELETE FROM session_store WHERE key = ?`, key,
		); err != nil {
			return errx.WrapStorage(err)
		}
	}
	return nil
}

func (s *SQLiteSessionStorage) Close() error {
	return s.db.Close()
}

var _ session.Storage = (*SQLiteSessionStorage)(nil)
