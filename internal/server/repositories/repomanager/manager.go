// Package repomanager opens the configured record backend: it owns the
// database or object-store handles, runs the embedded goose migrations and
// vends a records.Repository bound to them.
package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/registre/internal/common"
	"github.com/dmitrijs2005/registre/internal/filex"
	"github.com/dmitrijs2005/registre/internal/server/config"
	"github.com/dmitrijs2005/registre/internal/server/repositories/blob"
	"github.com/dmitrijs2005/registre/internal/server/repositories/records"
	"github.com/pressly/goose/v3"
)

// RepositoryManager migrates a SQL database and vends the record repository
// living in it.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Records(db *sql.DB) records.Repository
}

// Store is an opened record backend.
type Store struct {
	Records records.Repository
	closers []func() error
}

// Close releases every handle held by the store.
func (s *Store) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// seams for tests
var (
	sqlOpen = sql.Open

	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return goose.UpContext(ctx, db, dir, opts...)
	}

	newObjectAPI = func(ctx context.Context, o blob.S3Options) (blob.ObjectAPI, error) {
		return blob.NewS3Client(ctx, o)
	}
)

// Open builds the record backend selected by cfg.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.Backend {
	case config.BackendRemote:
		return openSQL(ctx, "pgx", cfg.DatabaseDSN, NewPostgresRepositoryManager())
	case config.BackendLocal:
		if cfg.BlobDriver == config.BlobS3 {
			return openS3(ctx, cfg)
		}
		if err := filex.EnsureParentDir(cfg.LocalDSN); err != nil {
			return nil, fmt.Errorf("failed to prepare local store: %w", err)
		}
		return openSQL(ctx, "sqlite", cfg.LocalDSN, NewSQLiteRepositoryManager())
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

func openSQL(ctx context.Context, driver, dsn string, m RepositoryManager) (*Store, error) {
	db, err := sqlOpen(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations failed: %w", err)
	}

	return &Store{Records: m.Records(db), closers: []func() error{db.Close}}, nil
}

func openS3(ctx context.Context, cfg *config.Config) (*Store, error) {
	client, err := newObjectAPI(ctx, blob.S3Options{
		User:     cfg.S3RootUser,
		Password: cfg.S3RootPassword,
		Region:   cfg.S3Region,
		Endpoint: cfg.S3BaseEndpoint,
	})
	if err != nil {
		return nil, err
	}

	keeper := blob.NewS3Keeper(client, cfg.S3Bucket)
	return &Store{Records: records.NewBlobRepository(keeper, common.StorageKey)}, nil
}
