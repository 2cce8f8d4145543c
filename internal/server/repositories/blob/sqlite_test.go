package blob

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSQLiteKeeper_SetAndGet(t *testing.T) {
	k := NewSQLiteKeeper(setupDB(t))
	ctx := context.Background()

	require.NoError(t, k.Set(ctx, "k1", []byte(`[1]`)))

	v, err := k.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1]`), v)
}

func TestSQLiteKeeper_Get_Absent_ReturnsNilNil(t *testing.T) {
	k := NewSQLiteKeeper(setupDB(t))

	v, err := k.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSQLiteKeeper_Set_Overwrites(t *testing.T) {
	k := NewSQLiteKeeper(setupDB(t))
	ctx := context.Background()

	require.NoError(t, k.Set(ctx, "k", []byte("old")))
	require.NoError(t, k.Set(ctx, "k", []byte("new")))

	v, err := k.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), v)
}

func TestSQLiteKeeper_Delete(t *testing.T) {
	k := NewSQLiteKeeper(setupDB(t))
	ctx := context.Background()

	require.NoError(t, k.Set(ctx, "k", []byte("v")))
	require.NoError(t, k.Delete(ctx, "k"))
	require.NoError(t, k.Delete(ctx, "k"), "deleting an absent key is fine")

	v, err := k.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSQLiteKeeper_Update(t *testing.T) {
	k := NewSQLiteKeeper(setupDB(t))
	ctx := context.Background()

	var seen [][]byte
	appendX := func(cur []byte) ([]byte, error) {
		seen = append(seen, cur)
		return append(append([]byte{}, cur...), 'x'), nil
	}

	require.NoError(t, k.Update(ctx, "k", appendX))
	require.NoError(t, k.Update(ctx, "k", appendX))

	v, err := k.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("xx"), v)
	require.Len(t, seen, 2)
	assert.Nil(t, seen[0])
	assert.Equal(t, []byte("x"), seen[1])
}

func TestSQLiteKeeper_Update_FnErrorWritesNothing(t *testing.T) {
	k := NewSQLiteKeeper(setupDB(t))
	ctx := context.Background()
	require.NoError(t, k.Set(ctx, "k", []byte("keep")))

	boom := errors.New("boom")
	err := k.Update(ctx, "k", func(cur []byte) ([]byte, error) { return []byte("lost"), boom })
	require.ErrorIs(t, err, boom)

	v, err := k.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("keep"), v)
}

func TestSQLiteKeeper_ClosedDB(t *testing.T) {
	db := setupDB(t)
	k := NewSQLiteKeeper(db)
	require.NoError(t, db.Close())
	ctx := context.Background()

	_, err := k.Get(ctx, "k")
	assert.Error(t, err)
	assert.Error(t, k.Set(ctx, "k", []byte("v")))
	assert.Error(t, k.Delete(ctx, "k"))
	assert.Error(t, k.Update(ctx, "k", func(cur []byte) ([]byte, error) { return cur, nil }))
}
