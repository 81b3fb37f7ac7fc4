package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db)
}

func TestSQLiteStore_GetEmpty(t *testing.T) {
	s := setupStore(t)

	tok, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestSQLiteStore_SetGetClear(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "t1"))
	tok, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", tok)

	// overwrite under the same key
	require.NoError(t, s.Set(ctx, "t2"))
	tok, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t2", tok)

	require.NoError(t, s.Clear(ctx))
	tok, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)

	// clearing an already empty store is a no-op
	require.NoError(t, s.Clear(ctx))
}

func TestSQLiteStore_SetReplacesInsideOneTransaction(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	s := NewSQLiteStore(db)

	require.NoError(t, s.Set(ctx, "t1"))
	require.NoError(t, s.Set(ctx, "t2"))
	require.NoError(t, s.Set(ctx, "t3"))

	// The delete+insert pair must commit as a unit: exactly one row, and it
	// carries the latest token.
	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM state`).Scan(&n))
	assert.Equal(t, 1, n)

	tok, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t3", tok)
}

func TestOpen_ReopensExistingDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteStore(db).Set(ctx, "survive"))
	require.NoError(t, db.Close())

	db2, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db2.Close() })

	tok, err := NewSQLiteStore(db2).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "survive", tok, "token must survive a reopen")
}
