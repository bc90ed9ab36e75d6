package repository

import (
	"context"

	"github.com/oms-integration/mockcommerce/services/catalog/internal/domain"
)

// ProductRepository defines the interface for catalog storage operations.
type ProductRepository interface {
	// List returns all products in insertion order.
	List(ctx context.Context) ([]domain.Product, error)

	// GetByID retrieves a product by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Product, error)

	// Replace overwrites the stored product with the same ID.
	Replace(ctx context.Context, product *domain.Product) error

	// Delete removes a product from the catalog.
	Delete(ctx context.Context, id string) error
}
