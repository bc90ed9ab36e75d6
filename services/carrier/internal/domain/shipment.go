package domain

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// NewTrackingNumber returns a carrier tracking number: "TN" followed by
// ten uppercase hex characters.
func NewTrackingNumber() string {
	u := uuid.New()
	return "TN" + strings.ToUpper(hex.EncodeToString(u[:])[:10])
}

// Label is a generated shipping label.
type Label struct {
	LabelID           string  `json:"labelId"`
	PackageDimensions string  `json:"packageDimensions"`
	PackageWeight     float64 `json:"packageWeight"`
	RecipientAddress  string  `json:"recipientAddress"`
	RecipientCity     string  `json:"recipientCity"`
	RecipientName     string  `json:"recipientName"`
	RecipientState    string  `json:"recipientState"`
	RecipientZip      string  `json:"recipientZip"`
	SenderAddress     string  `json:"senderAddress"`
	SenderCity        string  `json:"senderCity"`
	SenderName        string  `json:"senderName"`
	SenderState       string  `json:"senderState"`
	SenderZip         string  `json:"senderZip"`
	ShippingOptions   string  `json:"shippingOptions"`
	TrackingNumber    string  `json:"trackingNumber"`
	LabelImage        string  `json:"labelImage"`
	ShippingCost      float64 `json:"shippingCost"`
}

// LabelResult is the response body for a generated label.
type LabelResult struct {
	LabelImage     string  `json:"labelImage"`
	ShippingCost   float64 `json:"shippingCost"`
	TrackingNumber string  `json:"trackingNumber"`
}

// Result returns the response view of the label.
func (l *Label) Result() LabelResult {
	return LabelResult{
		LabelImage:     l.LabelImage,
		ShippingCost:   l.ShippingCost,
		TrackingNumber: l.TrackingNumber,
	}
}

// Pickup is a scheduled shipping pickup. The sku/quantity/location/timestamp
// fields carry the inventory-check response shape the upstream API returns.
type Pickup struct {
	PickupID          string `json:"pickupId"`
	ContactName       string `json:"contactName"`
	ContactPhone      string `json:"contactPhone"`
	PickupAddress     string `json:"pickupAddress"`
	PickupCity        string `json:"pickupCity"`
	PickupDate        string `json:"pickupDate"`
	PickupState       string `json:"pickupState"`
	PickupTime        string `json:"pickupTime"`
	PickupZip         string `json:"pickupZip"`
	SKU               string `json:"sku"`
	AvailableQuantity int    `json:"availableQuantity"`
	Location          string `json:"location"`
	Timestamp         string `json:"timestamp"`
}

// PickupResult is the response body for a scheduled pickup.
type PickupResult struct {
	SKU               string `json:"sku"`
	AvailableQuantity int    `json:"availableQuantity"`
	Location          string `json:"location"`
	Timestamp         string `json:"timestamp"`
}

// Result returns the response view of the pickup.
func (p *Pickup) Result() PickupResult {
	return PickupResult{
		SKU:               p.SKU,
		AvailableQuantity: p.AvailableQuantity,
		Location:          p.Location,
		Timestamp:         p.Timestamp,
	}
}

// Tracking is the tracking record for a shipment.
type Tracking struct {
	TrackingNumber        string   `json:"trackingNumber"`
	Status                string   `json:"status"`
	EstimatedDeliveryDate *string  `json:"estimatedDeliveryDate,omitempty"`
	Location              string   `json:"location"`
	StatusUpdates         []string `json:"statusUpdates"`
}

// Clone returns a deep copy of the tracking record.
func (t *Tracking) Clone() *Tracking {
	c := *t
	if t.EstimatedDeliveryDate != nil {
		d := *t.EstimatedDeliveryDate
		c.EstimatedDeliveryDate = &d
	}
	c.StatusUpdates = make([]string, len(t.StatusUpdates))
	copy(c.StatusUpdates, t.StatusUpdates)
	return &c
}
