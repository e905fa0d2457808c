package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/devconnector/internal/common"
	"github.com/dmitrijs2005/devconnector/internal/dbx"
	"github.com/dmitrijs2005/devconnector/internal/server/models"
	"github.com/google/uuid"
)

// sqlQueries holds the dialect-specific statements.
type sqlQueries struct {
	insertAccount    string
	insertCredential string
	findByEmail      string
}

// sqlRepository implements Repository over database/sql. The account row
// and its credential row are written in one transaction.
type sqlRepository struct {
	db      *sql.DB
	q       sqlQueries
	isDupe  func(error) bool
	newID   func() string
	nowFunc func() time.Time
}

func newSQLRepository(db *sql.DB, q sqlQueries, isDupe func(error) bool) *sqlRepository {
	return &sqlRepository{
		db:      db,
		q:       q,
		isDupe:  isDupe,
		newID:   uuid.NewString,
		nowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

func (r *sqlRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	created := *account
	created.ID = r.newID()
	created.CreatedAt = r.nowFunc()

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, r.q.insertAccount,
			created.ID, created.Name, created.Email, created.AvatarRef, created.CreatedAt); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, r.q.insertCredential, created.ID, created.CredentialHash, created.CreatedAt)
		return err
	})

	if err != nil {
		if r.isDupe(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &created, nil
}

func (r *sqlRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	a := &models.Account{}
	err := r.db.QueryRowContext(ctx, r.q.findByEmail, email).
		Scan(&a.ID, &a.Name, &a.Email, &a.AvatarRef, &a.CredentialHash, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}
