// Package repomanager opens the configured storage backend, runs its
// migrations (via goose) and vends the accounts repository bound to it.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/devconnector/internal/server/config"
	"github.com/dmitrijs2005/devconnector/internal/server/migrations"
	"github.com/dmitrijs2005/devconnector/internal/server/repositories/accounts"
	"github.com/pressly/goose/v3"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Accounts() accounts.Repository
	Close() error
}

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// New builds the RepositoryManager selected by cfg.StorageType.
func New(cfg *config.Config) (RepositoryManager, error) {
	switch cfg.StorageType {
	case config.StorageMemory:
		return NewInMemoryRepositoryManager(), nil
	case config.StorageSQLite:
		db, err := sqlOpen("sqlite", cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return NewSQLiteRepositoryManager(db), nil
	case config.StoragePostgres:
		db, err := sqlOpen("pgx", cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return NewPostgresRepositoryManager(db), nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.StorageType)
	}
}

// runGoose points goose at the embedded migrations for one dialect and
// applies them.
func runGoose(ctx context.Context, db *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
