// Package cart persists the shopping cart.
package cart

import (
	"context"

	"github.com/ecofinds/ecofinds-go/internal/models"
)

// Repository describes persistence operations for cart lines.
type Repository interface {
	// GetAll returns the cart in the order lines were first added.
	GetAll(ctx context.Context) ([]models.CartItem, error)

	// Upsert inserts a new cart line or replaces the one with the same
	// product id.
	Upsert(ctx context.Context, item models.CartItem) error

	// Delete removes the line for the given product id. Missing ids are a
	// silent no-op.
	Delete(ctx context.Context, productID string) error

	// Clear removes every line.
	Clear(ctx context.Context) error
}
