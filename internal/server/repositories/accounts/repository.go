// Package accounts persists Account records.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/devconnector/internal/server/models"
)

// Repository is the account store boundary.
//
// FindByEmail is an exact match and returns common.ErrorNotFound when no
// account has that email. Create assigns ID and CreatedAt and returns
// common.ErrorAlreadyExists when the email is taken, even if a preceding
// FindByEmail saw it free.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
}
