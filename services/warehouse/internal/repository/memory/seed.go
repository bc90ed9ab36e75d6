package memory

import (
	"github.com/google/uuid"

	"github.com/oms-integration/mockcommerce/services/warehouse/internal/domain"
)

func strptr(s string) *string { return &s }

// Seed loads two sample orders with predictable IDs.
func (s *OrderStore) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders["order_init_1"] = &domain.Order{
		OrderID:         "order_init_1",
		CustomerName:    strptr("John Doe"),
		ShippingAddress: strptr("123 Main St, Anytown, USA"),
		BillingAddress:  strptr("123 Main St, Anytown, USA"),
		Items: []domain.Item{
			{
				ItemID:      uuid.NewString(),
				ProductID:   "PROD001",
				ProductName: "Laptop Pro",
				Quantity:    1,
				Price:       1200.00,
			},
			{
				ItemID:      uuid.NewString(),
				ProductID:   "PROD002",
				ProductName: "Wireless Mouse",
				Quantity:    1,
				Price:       25.00,
			},
		},
		OrderPriority:  strptr("High"),
		ShippingMethod: strptr("Express"),
		TotalAmount:    1225.00,
		Status:         "Awaiting Fulfillment",
	}

	s.orders["order_init_2"] = &domain.Order{
		OrderID:         "order_init_2",
		CustomerName:    strptr("Jane Smith"),
		ShippingAddress: strptr("456 Oak Ave, Otherville, USA"),
		BillingAddress:  strptr("456 Oak Ave, Otherville, USA"),
		Items: []domain.Item{
			{
				ItemID:      uuid.NewString(),
				ProductID:   "PROD003",
				ProductName: "Coffee Maker",
				Quantity:    1,
				Price:       75.50,
			},
		},
		OrderPriority:  strptr("Medium"),
		ShippingMethod: strptr("Standard"),
		TotalAmount:    75.50,
		Status:         "Picking",
	}
}
