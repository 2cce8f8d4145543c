package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/registre/internal/common"
	"github.com/dmitrijs2005/registre/internal/server/migrations"
	"github.com/dmitrijs2005/registre/internal/server/repositories/blob"
	"github.com/dmitrijs2005/registre/internal/server/repositories/records"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager keeps the record list as one blob in a local
// SQLite kv table.
type SQLiteRepositoryManager struct{}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

func (m *SQLiteRepositoryManager) Records(db *sql.DB) records.Repository {
	return records.NewBlobRepository(blob.NewSQLiteKeeper(db), common.StorageKey)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	// a single writer keeps read-modify-write transactions from hitting SQLITE_BUSY
	db.SetMaxOpenConns(1)

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, migrations.SQLiteDir)
}
