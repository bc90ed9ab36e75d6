package repository

import (
	"context"

	"github.com/oms-integration/mockcommerce/services/warehouse/internal/domain"
)

// WarehouseRepository defines the interface for warehouse order storage.
type WarehouseRepository interface {
	// Create stores a new order.
	Create(ctx context.Context, order *domain.Order) error

	// GetByID retrieves an order by its ID.
	GetByID(ctx context.Context, id string) (*domain.Order, error)

	// Mutate applies fn to the stored order under the store's lock. The
	// order passed to fn is a working copy; it is committed only when fn
	// returns nil, so a failed mutation leaves the record untouched.
	Mutate(ctx context.Context, id string, fn func(*domain.Order) error) (*domain.Order, error)

	// Delete removes an order by its ID.
	Delete(ctx context.Context, id string) error
}
