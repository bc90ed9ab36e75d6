package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/oms-integration/mockcommerce/pkg/errors"
	"github.com/oms-integration/mockcommerce/services/carrier/internal/repository/memory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestService(t *testing.T) (*CarrierService, *memory.ShipmentStore) {
	t.Helper()

	store := memory.NewShipmentStore()
	svc := NewCarrierService(store, testLogger())
	svc.now = func() time.Time { return time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC) }
	svc.newID = func() string { return "11111111-2222-3333-4444-555555555555" }
	svc.newTrackingNumber = func() string { return "TNABCDEF0123" }

	return svc, store
}

func labelInput() LabelInput {
	return LabelInput{
		PackageDimensions: "12x8x4",
		PackageWeight:     5.0,
		RecipientAddress:  "123 Main St",
		RecipientCity:     "Anytown",
		RecipientName:     "Jane Doe",
		RecipientState:    "CA",
		RecipientZip:      "90210",
		SenderAddress:     "456 Oak Ave",
		SenderCity:        "Otherville",
		SenderName:        "John Smith",
		SenderState:       "NY",
		SenderZip:         "10001",
		ShippingOptions:   "priority",
	}
}

func TestGenerateLabel(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.GenerateLabel(context.Background(), labelInput())

	require.NoError(t, err)
	assert.Equal(t, "TNABCDEF0123", result.TrackingNumber)
	assert.Equal(t, "base64encodedimage_11111111-2222-3333-4444-555555555555", result.LabelImage)
	assert.Equal(t, 20.50, result.ShippingCost)
}

func TestGenerateLabelRegistersTracking(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.GenerateLabel(context.Background(), labelInput())
	require.NoError(t, err)

	tracking, err := svc.GetTracking(context.Background(), result.TrackingNumber)
	require.NoError(t, err)
	assert.Equal(t, "Label Created", tracking.Status)
	assert.Equal(t, "Otherville", tracking.Location)
	assert.Nil(t, tracking.EstimatedDeliveryDate)
	assert.Equal(t, []string{"Shipping label created."}, tracking.StatusUpdates)
}

func TestSchedulePickupDefaults(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.SchedulePickup(context.Background(), PickupInput{
		ContactName:   "Alice Wonderland",
		ContactPhone:  "555-1234",
		PickupAddress: "789 Pine Ln",
		PickupCity:    "Pickupsburg",
		PickupDate:    "2026-05-11",
		PickupState:   "TX",
		PickupTime:    "14:30",
		PickupZip:     "75001",
	})

	require.NoError(t, err)
	assert.Equal(t, "DEFAULT_SKU_11111111", result.SKU)
	assert.Equal(t, 100, result.AvailableQuantity)
	assert.Equal(t, "Main Warehouse", result.Location)
	assert.Equal(t, "2026-05-10T12:00:00Z", result.Timestamp)
}

func TestSchedulePickupKeepsProvidedSKU(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.SchedulePickup(context.Background(), PickupInput{
		ContactName:   "Alice",
		ContactPhone:  "555-1234",
		PickupAddress: "789 Pine Ln",
		PickupCity:    "Pickupsburg",
		PickupDate:    "2026-05-11",
		PickupState:   "TX",
		PickupTime:    "14:30",
		PickupZip:     "75001",
		SKU:           "ITEM042",
	})

	require.NoError(t, err)
	assert.Equal(t, "ITEM042", result.SKU)
}

func TestGetTrackingNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetTracking(context.Background(), "TNUNKNOWN")

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.Equal(t, "Tracking number 'TNUNKNOWN' not found.", appErr.Message)
}
