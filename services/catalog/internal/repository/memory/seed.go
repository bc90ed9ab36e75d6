package memory

import (
	"github.com/oms-integration/mockcommerce/services/catalog/internal/domain"
)

// Seed pre-populates the catalog with the default products integration
// clients expect to find.
func (s *ProductStore) Seed() {
	s.Add(&domain.Product{
		ProductID:   "P001",
		Name:        "Laptop Pro",
		Description: "High-end laptop for professionals.",
		Price:       1200.00,
		StockLevel:  domain.StockLevel{Available: 10, Incoming: 5, Backorderable: true},
		LeadTime:    domain.LeadTime{Days: 2, Description: "Ships in 2 days"},
		P2OFlag:     false,
		AdditionalProperties: map[string]any{
			"color":    "red",
			"material": "metal",
		},
	})
	s.Add(&domain.Product{
		ProductID:   "P002",
		Name:        "Wireless Mouse",
		Description: "Ergonomic wireless mouse.",
		Price:       25.00,
		StockLevel:  domain.StockLevel{Available: 0, Incoming: 10, Backorderable: false},
		LeadTime:    domain.LeadTime{Days: 7, Description: "Ships in 1 week (P2O)"},
		P2OFlag:     true,
	})
	s.Add(&domain.Product{
		ProductID:   "P003",
		Name:        "Keyboard Basic",
		Description: "Standard USB keyboard.",
		Price:       15.00,
		StockLevel:  domain.StockLevel{Available: 100, Incoming: 0, Backorderable: true},
		LeadTime:    domain.LeadTime{Days: 1, Description: "Ships next day"},
		P2OFlag:     false,
	})
}
