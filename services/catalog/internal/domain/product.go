package domain

// Product holds the full catalog record for one product, including the
// stock/lead-time data the availability endpoint serves and the P2O
// (procure-to-order) fallback flag.
type Product struct {
	ProductID            string         `json:"productId"`
	Name                 string         `json:"name"`
	Description          string         `json:"description"`
	Price                float64        `json:"price"`
	StockLevel           StockLevel     `json:"stockLevel"`
	LeadTime             LeadTime       `json:"leadTime"`
	P2OFlag              bool           `json:"p2OFlag"`
	AdditionalProperties map[string]any `json:"additionalProperties,omitempty"`
}

// StockLevel represents the stock position of a product.
type StockLevel struct {
	Available     int  `json:"available"`
	Incoming      int  `json:"incoming"`
	Backorderable bool `json:"backorderable"`
}

// LeadTime is the estimated lead time for a product.
type LeadTime struct {
	Days        int    `json:"days"`
	Description string `json:"description"`
}

// ItemSummary is the condensed product representation returned by listings
// and updates; quantity carries the available stock.
type ItemSummary struct {
	ItemID      string  `json:"itemId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Availability is the stock/lead-time view of a product.
type Availability struct {
	StockLevel StockLevel `json:"stockLevel"`
	LeadTime   LeadTime   `json:"leadTime"`
	P2OFlag    bool       `json:"p2OFlag"`
}

// Summary returns the condensed representation of the product.
func (p *Product) Summary() ItemSummary {
	return ItemSummary{
		ItemID:      p.ProductID,
		ProductName: p.Name,
		Quantity:    p.StockLevel.Available,
		Price:       p.Price,
	}
}

// Availability returns the availability view of the product.
func (p *Product) Availability() Availability {
	return Availability{
		StockLevel: p.StockLevel,
		LeadTime:   p.LeadTime,
		P2OFlag:    p.P2OFlag,
	}
}

// Clone returns a deep copy of the product.
func (p *Product) Clone() *Product {
	c := *p
	if p.AdditionalProperties != nil {
		c.AdditionalProperties = make(map[string]any, len(p.AdditionalProperties))
		for k, v := range p.AdditionalProperties {
			c.AdditionalProperties[k] = v
		}
	}
	return &c
}
