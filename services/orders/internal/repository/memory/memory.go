// Package memory implements the order repository as a process-local,
// mutex-guarded store. Records live for the lifetime of the process; a
// restart starts empty again, which is the point of a stub.
package memory

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/oms-integration/mockcommerce/pkg/errors"
	"github.com/oms-integration/mockcommerce/pkg/pagination"
	"github.com/oms-integration/mockcommerce/services/orders/internal/domain"
	"github.com/oms-integration/mockcommerce/services/orders/internal/repository"
)

// OrderStore is an in-memory implementation of repository.OrderRepository.
// Orders are kept in insertion order so listings are stable.
type OrderStore struct {
	mu     sync.RWMutex
	orders []*domain.Order
	index  map[string]int
}

// NewOrderStore creates an empty order store.
func NewOrderStore() *OrderStore {
	return &OrderStore{index: make(map[string]int)}
}

// Create inserts a new order into the store.
func (s *OrderStore) Create(_ context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.index[order.ID] = len(s.orders)
	s.orders = append(s.orders, order.Clone())
	return nil
}

// GetByID retrieves a copy of the order with the given id.
func (s *OrderStore) GetByID(_ context.Context, id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return nil, apperrors.NotFound("Order", id)
	}
	return s.orders[i].Clone(), nil
}

// List returns the filtered page of orders plus the total match count
// before pagination.
func (s *OrderStore) List(_ context.Context, filter repository.OrderFilter) ([]domain.Order, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if matches(o, filter) {
			matched = append(matched, o)
		}
	}

	total := len(matched)
	page := pagination.Slice(matched, filter.Offset, filter.Limit)

	out := make([]domain.Order, len(page))
	for i, o := range page {
		out[i] = *o.Clone()
	}
	return out, total, nil
}

// Mutate applies fn to a working copy of the order under the store lock and
// commits the copy only if fn succeeds, so a failed mutation never leaves
// partial state and concurrent read-modify-writes cannot interleave.
func (s *OrderStore) Mutate(_ context.Context, id string, fn func(*domain.Order) error) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return nil, apperrors.NotFound("Order", id)
	}

	working := s.orders[i].Clone()
	if err := fn(working); err != nil {
		return nil, err
	}

	s.orders[i] = working
	return working.Clone(), nil
}

func matches(o *domain.Order, f repository.OrderFilter) bool {
	if f.CustomerID != nil && o.Customer.CustomerID != *f.CustomerID {
		return false
	}
	if f.Status != nil && o.Status != *f.Status {
		return false
	}
	if f.DateFrom != nil || f.DateTo != nil {
		y, m, d := o.CreatedAt.UTC().Date()
		orderDate := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		if f.DateFrom != nil && orderDate.Before(*f.DateFrom) {
			return false
		}
		if f.DateTo != nil && orderDate.After(*f.DateTo) {
			return false
		}
	}
	return true
}
