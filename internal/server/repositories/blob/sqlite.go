package blob

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/registre/internal/dbx"
)

// SQLiteKeeper implements Keeper on the kv table of a SQLite database.
type SQLiteKeeper struct {
	db *sql.DB
}

func NewSQLiteKeeper(db *sql.DB) *SQLiteKeeper {
	return &SQLiteKeeper{db: db}
}

func (k *SQLiteKeeper) Get(ctx context.Context, key string) ([]byte, error) {
	return get(ctx, k.db, key)
}

func (k *SQLiteKeeper) Set(ctx context.Context, key string, value []byte) error {
	return set(ctx, k.db, key, value)
}

func (k *SQLiteKeeper) Delete(ctx context.Context, key string) error {
	_, err := k.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

// Update performs the read-modify-write inside a single transaction.
func (k *SQLiteKeeper) Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error {
	return dbx.WithTx(ctx, k.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		current, err := get(ctx, tx, key)
		if err != nil {
			return err
		}

		next, err := fn(current)
		if err != nil {
			return err
		}

		return set(ctx, tx, key, next)
	})
}

func get(ctx context.Context, db dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}
