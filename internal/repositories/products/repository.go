// Package products persists the product catalog.
package products

import (
	"context"

	"github.com/ecofinds/ecofinds-go/internal/models"
)

// Repository describes persistence operations for Product records.
type Repository interface {
	// GetAll returns the catalog in insertion order.
	GetAll(ctx context.Context) ([]models.Product, error)

	// Create inserts a new product.
	Create(ctx context.Context, p models.Product) error

	// Update replaces the stored record with a matching id. Missing ids are
	// a silent no-op.
	Update(ctx context.Context, p models.Product) error

	// Delete removes the record with the given id. Missing ids are a silent
	// no-op.
	Delete(ctx context.Context, id string) error
}
