package memory

import (
	"context"
	"sync"

	apperrors "github.com/oms-integration/mockcommerce/pkg/errors"
	"github.com/oms-integration/mockcommerce/services/carrier/internal/domain"
)

// ShipmentStore is an in-memory implementation of the shipment repository.
type ShipmentStore struct {
	mu       sync.RWMutex
	labels   map[string]*domain.Label
	pickups  map[string]*domain.Pickup
	tracking map[string]*domain.Tracking
}

// NewShipmentStore creates an empty in-memory shipment store.
func NewShipmentStore() *ShipmentStore {
	return &ShipmentStore{
		labels:   make(map[string]*domain.Label),
		pickups:  make(map[string]*domain.Pickup),
		tracking: make(map[string]*domain.Tracking),
	}
}

// CreateLabel stores a label and registers its tracking record under a
// single lock so readers never observe a label without tracking.
func (s *ShipmentStore) CreateLabel(ctx context.Context, label *domain.Label, tracking *domain.Tracking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := *label
	s.labels[label.LabelID] = &l
	s.tracking[tracking.TrackingNumber] = tracking.Clone()
	return nil
}

// CreatePickup stores a scheduled pickup.
func (s *ShipmentStore) CreatePickup(ctx context.Context, pickup *domain.Pickup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := *pickup
	s.pickups[pickup.PickupID] = &p
	return nil
}

// GetTracking retrieves the tracking record for a tracking number.
func (s *ShipmentStore) GetTracking(ctx context.Context, trackingNumber string) (*domain.Tracking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tracking[trackingNumber]
	if !ok {
		return nil, &apperrors.AppError{
			Code:    "NOT_FOUND",
			Message: "Tracking number '" + trackingNumber + "' not found.",
			Status:  404,
			Err:     apperrors.ErrNotFound,
		}
	}
	return t.Clone(), nil
}
