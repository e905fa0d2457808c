package repomanager

import (
	"context"

	"github.com/dmitrijs2005/devconnector/internal/server/repositories/accounts"
)

// InMemoryRepositoryManager keeps everything in process memory. It has no
// schema, so RunMigrations is a no-op.
type InMemoryRepositoryManager struct {
	accounts *accounts.InMemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{accounts: accounts.NewInMemoryRepository()}
}

func (m *InMemoryRepositoryManager) Accounts() accounts.Repository {
	return m.accounts
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *InMemoryRepositoryManager) Close() error { return nil }
