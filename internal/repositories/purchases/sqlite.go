package purchases

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

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	query := `SELECT product_id, title, description, price, category, image_url, seller_id
			FROM purchases ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select purchases: %w", err)
	}
	defer rows.Close()

	var result []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Category, &p.ImageURL, &p.SellerID); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Append(ctx context.Context, snapshots []models.Product) error {
	query := `INSERT INTO purchases (product_id, title, description, price, category, image_url, seller_id)
			VALUES (?, ?, ?, ?, ?, ?, ?)`
	for _, p := range snapshots {
		_, err := r.db.ExecContext(ctx, query,
			p.ID, p.Title, p.Description, p.Price, p.Category, p.ImageURL, p.SellerID)
		if err != nil {
			return fmt.Errorf("failed to append purchase: %w", err)
		}
	}
	return nil
}
