// Package users persists the registered-user table.
package users

import (
	"context"

	"github.com/ecofinds/ecofinds-go/internal/models"
)

// Repository describes persistence operations for User records.
type Repository interface {
	// GetAll returns every registered user in insertion order.
	GetAll(ctx context.Context) ([]models.User, error)

	// Create inserts a new user.
	Create(ctx context.Context, user models.User) error

	// Update replaces the stored record with a matching id. Missing ids are
	// a silent no-op.
	Update(ctx context.Context, user models.User) error
}
