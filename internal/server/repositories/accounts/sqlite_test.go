package accounts

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/dmitrijs2005/devconnector/internal/common"
	"github.com/dmitrijs2005/devconnector/internal/server/migrations"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(migrations.Migrations)
	require.NoError(t, goose.SetDialect("sqlite3"))
	require.NoError(t, goose.UpContext(context.Background(), db, migrations.SQLiteDir))
	return db
}

func TestSQLite_CreateAndFind(t *testing.T) {
	repo := NewSQLiteRepository(setupSQLite(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, draft())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := repo.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "//www.gravatar.com/avatar/x", got.AvatarRef)
	assert.Equal(t, "$2a$10$hash", got.CredentialHash)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt), "created_at round-trips: %v vs %v", created.CreatedAt, got.CreatedAt)
}

func TestSQLite_FindByEmail_ExactMatch(t *testing.T) {
	repo := NewSQLiteRepository(setupSQLite(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, draft())
	require.NoError(t, err)

	_, err = repo.FindByEmail(ctx, "JANE@example.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSQLite_Create_DuplicateEmail(t *testing.T) {
	db := setupSQLite(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	first, err := repo.Create(ctx, draft())
	require.NoError(t, err)

	second := draft()
	second.Name = "Impostor"
	second.CredentialHash = "other"
	_, err = repo.Create(ctx, second)
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	got, err := repo.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "$2a$10$hash", got.CredentialHash)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM account_credentials`).Scan(&n))
	assert.Equal(t, 1, n, "no orphan credential row")
}

func TestSQLite_Create_DuplicateIDIsNotConflict(t *testing.T) {
	repo := NewSQLiteRepository(setupSQLite(t))
	repo.newID = func() string { return "fixed-id" }
	ctx := context.Background()

	_, err := repo.Create(ctx, draft())
	require.NoError(t, err)

	other := draft()
	other.Email = "other@example.com"
	_, err = repo.Create(ctx, other)
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestIsSQLiteEmailViolation(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()
	_, err := db.ExecContext(ctx, `ALTER TABLE accounts ADD COLUMN email_alias TEXT`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `CREATE UNIQUE INDEX uq_accounts_email_alias ON accounts (email_alias)`)
	require.NoError(t, err)

	insert := `INSERT INTO accounts (id, name, email, avatar, created_at, email_alias) VALUES (?, 'n', ?, 'a', CURRENT_TIMESTAMP, ?)`
	_, err = db.ExecContext(ctx, insert, "1", "a@example.com", "alias")
	require.NoError(t, err)

	tests := []struct {
		name             string
		id, email, alias string
		want             bool
	}{
		{"email", "2", "a@example.com", "other", true},
		{"column sharing the email prefix", "3", "b@example.com", "alias", false},
		{"primary key", "1", "c@example.com", "third", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := db.ExecContext(ctx, insert, tt.id, tt.email, tt.alias)
			require.Error(t, err)
			assert.Equal(t, tt.want, isSQLiteEmailViolation(err), err.Error())
		})
	}

	assert.False(t, isSQLiteEmailViolation(errors.New("UNIQUE constraint failed: accounts.email")))
	assert.False(t, isSQLiteEmailViolation(nil))
}
