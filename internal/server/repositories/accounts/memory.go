package accounts

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/devconnector/internal/common"
	"github.com/dmitrijs2005/devconnector/internal/server/models"
	"github.com/google/uuid"
)

// InMemoryRepository keeps accounts in a map keyed by email. Create checks
// and inserts under one lock, so it never admits a duplicate.
type InMemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]models.Account
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byEmail: make(map[string]models.Account)}
}

func (r *InMemoryRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &a, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[account.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}

	a := *account
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now().UTC()
	r.byEmail[a.Email] = a

	return &a, nil
}

// Len returns the number of stored accounts.
func (r *InMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byEmail)
}
