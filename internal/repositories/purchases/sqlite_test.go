package purchases

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
CREATE TABLE purchases (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  product_id TEXT NOT NULL,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  price REAL NOT NULL,
  category TEXT NOT NULL,
  image_url TEXT NOT NULL DEFAULT '',
  seller_id TEXT NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func snapshot(id string, price float64) models.Product {
	return models.Product{ID: id, Title: "Item " + id, Price: price, Category: models.CategoryBooks, SellerID: "u1"}
}

func TestAppendAndGetAll_PreservesOrder(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	first := []models.Product{snapshot("a", 10), snapshot("b", 20)}
	require.NoError(t, r.Append(ctx, first))
	require.NoError(t, r.Append(ctx, []models.Product{snapshot("c", 30)}))

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
}

func TestAppend_DuplicateSnapshotsAllowed(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	// Two units of the same product are two separate ledger rows.
	s := snapshot("a", 10)
	require.NoError(t, r.Append(ctx, []models.Product{s, s}))

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestAppend_Empty(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Append(ctx, nil))
	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
