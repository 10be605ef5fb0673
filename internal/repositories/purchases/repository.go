// Package purchases persists the append-only purchase ledger.
package purchases

import (
	"context"

	"github.com/ecofinds/ecofinds-go/internal/models"
)

// Repository describes persistence operations for the purchase ledger.
// The ledger stores product snapshots; it is never updated or pruned.
type Repository interface {
	// GetAll returns the ledger in purchase order (oldest first).
	GetAll(ctx context.Context) ([]models.Product, error)

	// Append adds the given snapshots to the end of the ledger, preserving
	// their slice order.
	Append(ctx context.Context, snapshots []models.Product) error
}
