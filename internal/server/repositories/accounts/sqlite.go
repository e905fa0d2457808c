package accounts

import (
	"database/sql"
	"errors"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var sqliteQueries = sqlQueries{
	insertAccount: `INSERT INTO accounts (id, name, email, avatar, created_at)
		VALUES (?, ?, ?, ?, ?)`,
	insertCredential: `INSERT INTO account_credentials (account_id, password_hash, created_at)
		VALUES (?, ?, ?)`,
	findByEmail: `SELECT a.id, a.name, a.email, a.avatar, c.password_hash, a.created_at
		FROM accounts a
		JOIN account_credentials c ON c.account_id = a.id
		WHERE a.email = ?`,
}

// SQLiteRepository stores accounts in SQLite (modernc.org/sqlite).
type SQLiteRepository struct {
	*sqlRepository
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{newSQLRepository(db, sqliteQueries, isSQLiteEmailViolation)}
}

// SQLite names the columns, not the index, in unique violations:
// "constraint failed: UNIQUE constraint failed: accounts.email (2067)".
// uq_accounts_email is the only unique index on exactly this column list.
const (
	sqliteUniquePrefix = "UNIQUE constraint failed: "
	sqliteEmailColumns = "accounts.email"
)

func isSQLiteEmailViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) || se.Code() != sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return false
	}
	_, cols, ok := strings.Cut(se.Error(), sqliteUniquePrefix)
	if !ok {
		return false
	}
	cols, _, _ = strings.Cut(cols, " (")
	return cols == sqliteEmailColumns
}
