package repository

import (
	"context"
	"time"

	"github.com/oms-integration/mockcommerce/services/orders/internal/domain"
)

// OrderFilter defines filter criteria for listing orders. All filters are
// optional and combine with AND. Date bounds are inclusive and compare
// against the calendar date of the order's creation timestamp.
type OrderFilter struct {
	CustomerID *string
	Status     *string
	DateFrom   *time.Time
	DateTo     *time.Time
	Limit      int
	Offset     int
}

// OrderRepository defines the interface for order storage operations.
type OrderRepository interface {
	// Create inserts a new order into the store.
	Create(ctx context.Context, order *domain.Order) error

	// GetByID retrieves an order by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Order, error)

	// List returns the filtered page of orders along with the total number
	// of matches before pagination.
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, int, error)

	// Mutate applies fn to the order with the given id as one atomic
	// read-modify-write: two concurrent mutations of the same order never
	// interleave. If fn returns an error the order is left unmodified.
	// The updated order is returned on success.
	Mutate(ctx context.Context, id string, fn func(*domain.Order) error) (*domain.Order, error)
}
