package memory

import (
	"context"
	"net/http"
	"sync"

	apperrors "github.com/oms-integration/mockcommerce/pkg/errors"
	"github.com/oms-integration/mockcommerce/services/warehouse/internal/domain"
)

// OrderStore is an in-memory implementation of the warehouse repository.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
}

// NewOrderStore creates an empty in-memory warehouse order store.
func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make(map[string]*domain.Order)}
}

func orderNotFound() error {
	return &apperrors.AppError{
		Code:    "ORDER_NOT_FOUND",
		Message: "Order not found.",
		Field:   "orderId",
		Status:  http.StatusNotFound,
		Err:     apperrors.ErrNotFound,
	}
}

// Create stores a new order.
func (s *OrderStore) Create(ctx context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders[order.OrderID] = order.Clone()
	return nil
}

// GetByID retrieves an order by its ID.
func (s *OrderStore) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, orderNotFound()
	}
	return order.Clone(), nil
}

// Mutate applies fn to a working copy of the order and commits it only
// when fn succeeds.
func (s *OrderStore) Mutate(ctx context.Context, id string, fn func(*domain.Order) error) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, orderNotFound()
	}

	working := order.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}

	s.orders[id] = working
	return working.Clone(), nil
}

// Delete removes an order by its ID.
func (s *OrderStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[id]; !ok {
		return orderNotFound()
	}
	delete(s.orders, id)
	return nil
}
