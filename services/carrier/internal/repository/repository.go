package repository

import (
	"context"

	"github.com/oms-integration/mockcommerce/services/carrier/internal/domain"
)

// ShipmentRepository defines the interface for carrier storage operations.
// Labels and tracking records live together so creating a label registers
// its tracking entry atomically.
type ShipmentRepository interface {
	// CreateLabel stores a label and its corresponding tracking record.
	CreateLabel(ctx context.Context, label *domain.Label, tracking *domain.Tracking) error

	// CreatePickup stores a scheduled pickup.
	CreatePickup(ctx context.Context, pickup *domain.Pickup) error

	// GetTracking retrieves the tracking record for a tracking number.
	GetTracking(ctx context.Context, trackingNumber string) (*domain.Tracking, error)
}
