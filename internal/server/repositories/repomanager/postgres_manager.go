package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/devconnector/internal/server/migrations"
	"github.com/dmitrijs2005/devconnector/internal/server/repositories/accounts"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories.
type PostgresRepositoryManager struct {
	db       *sql.DB
	accounts *accounts.PostgresRepository
}

func NewPostgresRepositoryManager(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{db: db, accounts: accounts.NewPostgresRepository(db)}
}

func (m *PostgresRepositoryManager) Accounts() accounts.Repository {
	return m.accounts
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	return runGoose(ctx, m.db, "pgx", migrations.PostgresDir)
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}
