package memory

import (
	"context"
	"time"

	"github.com/oms-integration/mockcommerce/services/orders/internal/domain"
)

// Seed pre-populates the store with the sample order integration clients
// expect to find, using a predictable ID.
func (s *OrderStore) Seed() error {
	now := time.Now().UTC()
	notes := "This is a pre-populated sample order."

	sample := &domain.Order{
		ID:        "ORD-SAMPLE-001",
		CreatedAt: now,
		UpdatedAt: now,
		Customer: domain.Customer{
			CustomerID: "CUST-001",
			Email:      "john.doe@example.com",
			FirstName:  "John",
			LastName:   "Doe",
			Phone:      "555-1234",
		},
		Items: []domain.LineItem{
			{ItemID: "ITEM-A100", ProductName: "Wireless Mouse", Quantity: 1, Price: 25.99},
			{ItemID: "ITEM-B205", ProductName: "Keyboard", Quantity: 1, Price: 75.00},
		},
		ShippingAddress: domain.Address{
			Street: "123 Main St", City: "Anytown", State: "CA", Zip: "90210", Country: "USA",
		},
		BillingAddress: domain.Address{
			Street: "123 Main St", City: "Anytown", State: "CA", Zip: "90210", Country: "USA",
		},
		Payment: &domain.Payment{
			PaymentMethod: "Credit Card",
			TransactionID: "txn_sample_123abc",
			PaymentStatus: domain.PaymentStatusAuthorized,
		},
		Notes:  &notes,
		Status: domain.OrderStatusPending,
	}
	sample.Total = domain.ComputeTotal(sample.Items)

	return s.Create(context.Background(), sample)
}
