package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"jobdesk/internal/common"
	"jobdesk/internal/dbx"
)

// SQLiteStore keeps the token in the state table of the local database.
type SQLiteStore struct {
	db *sql.DB
}

var _ TokenStore = (*SQLiteStore)(nil)

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM state WHERE key = ?`, common.TokenStorageKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}
	return value, nil
}

// Set replaces the stored token. Delete and insert run in one transaction so
// a reader never observes the keyless gap between them.
func (s *SQLiteStore) Set(ctx context.Context, token string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM state WHERE key = ?`, common.TokenStorageKey); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO state (key, value) VALUES (?, ?)`, common.TokenStorageKey, token)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to set token: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM state WHERE key = ?`, common.TokenStorageKey)
	if err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}
