package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oms-integration/mockcommerce/services/carrier/internal/domain"
	"github.com/oms-integration/mockcommerce/services/carrier/internal/repository"
)

// CarrierService implements the carrier business logic.
type CarrierService struct {
	repo   repository.ShipmentRepository
	logger *slog.Logger

	// Injectable for deterministic tests.
	now               func() time.Time
	newID             func() string
	newTrackingNumber func() string
}

// NewCarrierService creates a new carrier service.
func NewCarrierService(repo repository.ShipmentRepository, logger *slog.Logger) *CarrierService {
	return &CarrierService{
		repo:              repo,
		logger:            logger,
		now:               func() time.Time { return time.Now().UTC() },
		newID:             uuid.NewString,
		newTrackingNumber: domain.NewTrackingNumber,
	}
}

// LabelInput carries the validated fields of a label request.
type LabelInput struct {
	PackageDimensions string
	PackageWeight     float64
	RecipientAddress  string
	RecipientCity     string
	RecipientName     string
	RecipientState    string
	RecipientZip      string
	SenderAddress     string
	SenderCity        string
	SenderName        string
	SenderState       string
	SenderZip         string
	ShippingOptions   string
}

// GenerateLabel creates a shipping label and its tracking record.
func (s *CarrierService) GenerateLabel(ctx context.Context, in LabelInput) (domain.LabelResult, error) {
	labelID := s.newID()
	trackingNumber := s.newTrackingNumber()

	label := &domain.Label{
		LabelID:           labelID,
		PackageDimensions: in.PackageDimensions,
		PackageWeight:     in.PackageWeight,
		RecipientAddress:  in.RecipientAddress,
		RecipientCity:     in.RecipientCity,
		RecipientName:     in.RecipientName,
		RecipientState:    in.RecipientState,
		RecipientZip:      in.RecipientZip,
		SenderAddress:     in.SenderAddress,
		SenderCity:        in.SenderCity,
		SenderName:        in.SenderName,
		SenderState:       in.SenderState,
		SenderZip:         in.SenderZip,
		ShippingOptions:   in.ShippingOptions,
		TrackingNumber:    trackingNumber,
		LabelImage:        fmt.Sprintf("base64encodedimage_%s", labelID),
		ShippingCost:      20.50,
	}

	tracking := &domain.Tracking{
		TrackingNumber: trackingNumber,
		Status:         "Label Created",
		Location:       in.SenderCity,
		StatusUpdates:  []string{"Shipping label created."},
	}

	if err := s.repo.CreateLabel(ctx, label, tracking); err != nil {
		return domain.LabelResult{}, fmt.Errorf("create label: %w", err)
	}

	s.logger.Info("label generated",
		slog.String("label_id", labelID),
		slog.String("tracking_number", trackingNumber),
	)
	return label.Result(), nil
}

// PickupInput carries the validated fields of a pickup request.
type PickupInput struct {
	ContactName   string
	ContactPhone  string
	PickupAddress string
	PickupCity    string
	PickupDate    string
	PickupState   string
	PickupTime    string
	PickupZip     string

	// SKU is optional; a default is derived from the pickup ID when absent.
	SKU string
}

// SchedulePickup records a pickup and returns the inventory-check response
// shape the upstream carrier API answers with.
func (s *CarrierService) SchedulePickup(ctx context.Context, in PickupInput) (domain.PickupResult, error) {
	pickupID := s.newID()

	sku := in.SKU
	if sku == "" {
		sku = "DEFAULT_SKU_" + pickupID[:8]
	}

	pickup := &domain.Pickup{
		PickupID:          pickupID,
		ContactName:       in.ContactName,
		ContactPhone:      in.ContactPhone,
		PickupAddress:     in.PickupAddress,
		PickupCity:        in.PickupCity,
		PickupDate:        in.PickupDate,
		PickupState:       in.PickupState,
		PickupTime:        in.PickupTime,
		PickupZip:         in.PickupZip,
		SKU:               sku,
		AvailableQuantity: 100,
		Location:          "Main Warehouse",
		Timestamp:         s.now().Format(time.RFC3339),
	}

	if err := s.repo.CreatePickup(ctx, pickup); err != nil {
		return domain.PickupResult{}, fmt.Errorf("create pickup: %w", err)
	}

	s.logger.Info("pickup scheduled",
		slog.String("pickup_id", pickupID),
		slog.String("pickup_date", in.PickupDate),
	)
	return pickup.Result(), nil
}

// GetTracking retrieves tracking information for a tracking number.
func (s *CarrierService) GetTracking(ctx context.Context, trackingNumber string) (*domain.Tracking, error) {
	return s.repo.GetTracking(ctx, trackingNumber)
}
