package accounts

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	emailUniqueConstraint = "uq_accounts_email"
)

var postgresQueries = sqlQueries{
	insertAccount: `INSERT INTO accounts (id, name, email, avatar, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
	insertCredential: `INSERT INTO account_credentials (account_id, password_hash, created_at)
		VALUES ($1, $2, $3)`,
	findByEmail: `SELECT a.id, a.name, a.email, a.avatar, c.password_hash, a.created_at
		FROM accounts a
		JOIN account_credentials c ON c.account_id = a.id
		WHERE a.email = $1`,
}

// PostgresRepository stores accounts in PostgreSQL through the pgx stdlib
// driver. Uniqueness of email is enforced by uq_accounts_email.
type PostgresRepository struct {
	*sqlRepository
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{newSQLRepository(db, postgresQueries, isPgEmailViolation)}
}

func isPgEmailViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return false
	}
	return pgErr.ConstraintName == emailUniqueConstraint
}
