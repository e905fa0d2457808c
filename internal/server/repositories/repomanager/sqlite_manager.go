package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/devconnector/internal/server/migrations"
	"github.com/dmitrijs2005/devconnector/internal/server/repositories/accounts"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends SQLite-backed repositories. SQLite allows a
// single writer, so the pool is capped at one connection.
type SQLiteRepositoryManager struct {
	db       *sql.DB
	accounts *accounts.SQLiteRepository
}

func NewSQLiteRepositoryManager(db *sql.DB) *SQLiteRepositoryManager {
	db.SetMaxOpenConns(1)
	return &SQLiteRepositoryManager{db: db, accounts: accounts.NewSQLiteRepository(db)}
}

func (m *SQLiteRepositoryManager) Accounts() accounts.Repository {
	return m.accounts
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context) error {
	return runGoose(ctx, m.db, "sqlite3", migrations.SQLiteDir)
}

func (m *SQLiteRepositoryManager) Close() error {
	return m.db.Close()
}
