package memory

import (
	"time"

	"github.com/google/uuid"

	"github.com/oms-integration/mockcommerce/services/carrier/internal/domain"
)

// Seed loads one label with its in-transit tracking record and one
// scheduled pickup, so tracking lookups work out of the box.
func (s *ShipmentStore) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()

	labelID := uuid.NewString()
	trackingNumber := domain.NewTrackingNumber()
	s.labels[labelID] = &domain.Label{
		LabelID:           labelID,
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
		TrackingNumber:    trackingNumber,
		LabelImage:        "base64encodedimagestring==",
		ShippingCost:      15.75,
	}

	estimated := now.AddDate(0, 0, 3).Format("2006-01-02")
	s.tracking[trackingNumber] = &domain.Tracking{
		TrackingNumber:        trackingNumber,
		Status:                "In Transit",
		EstimatedDeliveryDate: &estimated,
		Location:              "Origin Scan Facility",
		StatusUpdates: []string{
			"Package received at origin facility",
			"Departed origin facility",
		},
	}

	pickupID := uuid.NewString()
	s.pickups[pickupID] = &domain.Pickup{
		PickupID:          pickupID,
		ContactName:       "Alice Wonderland",
		ContactPhone:      "555-1234",
		PickupAddress:     "789 Pine Ln",
		PickupCity:        "Pickupsburg",
		PickupDate:        now.AddDate(0, 0, 1).Format("2006-01-02"),
		PickupState:       "TX",
		PickupTime:        "14:30",
		PickupZip:         "75001",
		SKU:               "ITEM001",
		AvailableQuantity: 10,
		Location:          "Warehouse A, Bay 3",
		Timestamp:         now.Format(time.RFC3339),
	}
}
