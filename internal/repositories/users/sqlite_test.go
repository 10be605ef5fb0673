package users

import (
	"context"
	"database/sql"
	"testing"

	"github.com/ecofinds/ecofinds-go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  username TEXT NOT NULL,
  password TEXT NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func TestCreateAndGetAll(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	u1 := models.User{ID: "u1", Email: "a@example.com", Username: "alice", Password: "pw1"}
	u2 := models.User{ID: "u2", Email: "b@example.com", Username: "bob", Password: "pw2"}
	require.NoError(t, r.Create(ctx, u1))
	require.NoError(t, r.Create(ctx, u2))

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.User{u1, u2}, got, "insertion order must be preserved")
}

func TestCreate_DuplicateEmailFails(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, models.User{ID: "u1", Email: "a@example.com", Username: "alice", Password: "pw"}))
	err := r.Create(ctx, models.User{ID: "u2", Email: "a@example.com", Username: "other", Password: "pw"})
	require.Error(t, err)
}

func TestUpdate(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, models.User{ID: "u1", Email: "a@example.com", Username: "alice", Password: "pw"}))

	updated := models.User{ID: "u1", Email: "new@example.com", Username: "alicia", Password: "pw"}
	require.NoError(t, r.Update(ctx, updated))

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, updated, got[0])
}

func TestUpdate_MissingIDIsNoop(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Update(ctx, models.User{ID: "ghost", Email: "x@example.com", Username: "x", Password: "x"}))

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
