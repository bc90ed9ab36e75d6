// Package memory implements the product repository as a process-local,
// mutex-guarded store.
package memory

import (
	"context"
	"sync"

	apperrors "github.com/oms-integration/mockcommerce/pkg/errors"
	"github.com/oms-integration/mockcommerce/services/catalog/internal/domain"
)

// ProductStore is an in-memory implementation of repository.ProductRepository.
// Products are kept in insertion order so listings are stable.
type ProductStore struct {
	mu       sync.RWMutex
	products []*domain.Product
	index    map[string]int
}

// NewProductStore creates an empty product store.
func NewProductStore() *ProductStore {
	return &ProductStore{index: make(map[string]int)}
}

// List returns all products in insertion order.
func (s *ProductStore) List(_ context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if p == nil {
			continue
		}
		out = append(out, *p.Clone())
	}
	return out, nil
}

// GetByID retrieves a copy of the product with the given id.
func (s *ProductStore) GetByID(_ context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok || s.products[i] == nil {
		return nil, apperrors.NotFound("Product", id)
	}
	return s.products[i].Clone(), nil
}

// Replace overwrites the stored product with the same ID.
func (s *ProductStore) Replace(_ context.Context, product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[product.ProductID]
	if !ok || s.products[i] == nil {
		return apperrors.NotFound("Product", product.ProductID)
	}
	s.products[i] = product.Clone()
	return nil
}

// Delete removes a product from the catalog. The slot is tombstoned so the
// remaining insertion order is undisturbed.
func (s *ProductStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok || s.products[i] == nil {
		return apperrors.NotFound("Product", id)
	}
	s.products[i] = nil
	delete(s.index, id)
	return nil
}

// Add inserts a product. Used by seeding.
func (s *ProductStore) Add(product *domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.index[product.ProductID] = len(s.products)
	s.products = append(s.products, product.Clone())
}
