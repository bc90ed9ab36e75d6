package domain

import (
	"math"
	"time"
)

// Order status constants, matching the OMS being stubbed.
const (
	OrderStatusPending             = "Pending"
	OrderStatusAwaitingPayment     = "AwaitingPayment"
	OrderStatusAwaitingFulfillment = "AwaitingFulfillment"
	OrderStatusAwaitingShipment    = "AwaitingShipment"
	OrderStatusShipped             = "Shipped"
	OrderStatusPartiallyShipped    = "PartiallyShipped"
	OrderStatusDelivered           = "Delivered"
	OrderStatusCancelled           = "Cancelled"
	OrderStatusReturned            = "Returned"
	OrderStatusDisputed            = "Disputed"
)

// Payment status constants.
const (
	PaymentStatusPending    = "Pending"
	PaymentStatusAuthorized = "Authorized"
	PaymentStatusPaid       = "Paid"
	PaymentStatusFailed     = "Failed"
	PaymentStatusRefunded   = "Refunded"
)

// Order represents a sales order held by the stub.
type Order struct {
	ID              string     `json:"orderId"`
	CreatedAt       time.Time  `json:"orderDate"`
	UpdatedAt       time.Time  `json:"lastUpdateDate"`
	Customer        Customer   `json:"customerDetails"`
	Items           []LineItem `json:"itemsOrdered"`
	ShippingAddress Address    `json:"shippingAddress"`
	BillingAddress  Address    `json:"billingAddress"`
	Payment         *Payment   `json:"paymentDetails"`
	Notes           *string    `json:"notes"`
	Total           float64    `json:"orderTotal"`
	Status          string     `json:"orderStatus"`
}

// Customer holds the contact details of the ordering customer.
type Customer struct {
	CustomerID string `json:"customerId"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Phone      string `json:"phone"`
}

// LineItem is one product entry within an order.
type LineItem struct {
	ItemID      string  `json:"itemId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// LineTotal returns quantity x price for this line item.
func (i LineItem) LineTotal() float64 {
	return float64(i.Quantity) * i.Price
}

// Address represents a shipping or billing postal address.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// Payment holds the optional payment details of an order.
type Payment struct {
	PaymentMethod string `json:"paymentMethod"`
	TransactionID string `json:"transactionId,omitempty"`
	PaymentStatus string `json:"paymentStatus,omitempty"`
}

// ValidStatuses returns all valid order statuses in their canonical order.
func ValidStatuses() []string {
	return []string{
		OrderStatusPending,
		OrderStatusAwaitingPayment,
		OrderStatusAwaitingFulfillment,
		OrderStatusAwaitingShipment,
		OrderStatusShipped,
		OrderStatusPartiallyShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
		OrderStatusReturned,
		OrderStatusDisputed,
	}
}

// IsValidStatus checks if a status string is a recognized order status.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

// ValidPaymentStatuses returns all valid payment statuses.
func ValidPaymentStatuses() []string {
	return []string{
		PaymentStatusPending,
		PaymentStatusAuthorized,
		PaymentStatusPaid,
		PaymentStatusFailed,
		PaymentStatusRefunded,
	}
}

// IsValidPaymentStatus checks if a status string is a recognized payment status.
func IsValidPaymentStatus(status string) bool {
	for _, s := range ValidPaymentStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the order is in a state that rejects further
// edits and cancellation.
func (o *Order) IsTerminal() bool {
	switch o.Status {
	case OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// ComputeTotal derives the order total from its line items, rounded to two
// decimals. The total is never client-settable; it is recomputed whenever the
// items change.
func ComputeTotal(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.LineTotal()
	}
	return math.Round(total*100) / 100
}

// Clone returns a deep copy of the order, so callers never share mutable
// state with the store.
func (o *Order) Clone() *Order {
	c := *o
	c.Items = make([]LineItem, len(o.Items))
	copy(c.Items, o.Items)
	if o.Payment != nil {
		p := *o.Payment
		c.Payment = &p
	}
	if o.Notes != nil {
		n := *o.Notes
		c.Notes = &n
	}
	return &c
}
