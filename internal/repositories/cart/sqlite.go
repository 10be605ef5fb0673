package cart

import (
	"context"
	"fmt"

	"github.com/ecofinds/ecofinds-go/internal/dbx"
	"github.com/ecofinds/ecofinds-go/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.CartItem, error) {
	query := `SELECT product_id, title, description, price, category, image_url, seller_id, quantity
			FROM cart_items ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select cart items: %w", err)
	}
	defer rows.Close()

	var result []models.CartItem
	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Price,
			&item.Category, &item.ImageURL, &item.SellerID, &item.Quantity); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Upsert inserts a cart line keyed by product id. On conflict the snapshot
// columns and quantity are replaced.
func (r *SQLiteRepository) Upsert(ctx context.Context, item models.CartItem) error {
	query := `INSERT INTO cart_items (product_id, title, description, price, category, image_url, seller_id, quantity)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(product_id) DO UPDATE SET title = excluded.title,
				description = excluded.description,
				price = excluded.price,
				category = excluded.category,
				image_url = excluded.image_url,
				seller_id = excluded.seller_id,
				quantity = excluded.quantity
	`
	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.Title, item.Description, item.Price, item.Category,
		item.ImageURL, item.SellerID, item.Quantity)
	if err != nil {
		return fmt.Errorf("failed to upsert cart item: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, productID string) error {
	query := `DELETE FROM cart_items WHERE product_id = ?`
	if _, err := r.db.ExecContext(ctx, query, productID); err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cart_items`); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
