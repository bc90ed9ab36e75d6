package domain

// Item is a line item on a warehouse order. ItemID is the system-generated
// line item identifier; ProductID is the product the line refers to.
type Item struct {
	ItemID      string  `json:"itemId"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Order is a warehouse fulfillment order. The optional fields are nullable
// because orders created through the item intake endpoint carry none of them.
type Order struct {
	OrderID         string  `json:"orderId"`
	CustomerName    *string `json:"customerName"`
	ShippingAddress *string `json:"shippingAddress"`
	BillingAddress  *string `json:"billingAddress"`
	Items           []Item  `json:"items"`
	OrderPriority   *string `json:"orderPriority"`
	ShippingMethod  *string `json:"shippingMethod"`
	TotalAmount     float64 `json:"totalAmount"`
	Status          string  `json:"status"`
}

// ItemView is the item-level representation the warehouse API exchanges:
// the first line item of an order.
type ItemView struct {
	ItemID      string  `json:"itemId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// ItemView returns the first line item of the order, or false when the
// order has no items to represent.
func (o *Order) ItemView() (ItemView, bool) {
	if len(o.Items) == 0 {
		return ItemView{}, false
	}
	first := o.Items[0]
	return ItemView{
		ItemID:      first.ItemID,
		ProductName: first.ProductName,
		Quantity:    first.Quantity,
		Price:       first.Price,
	}, true
}

// RecomputeTotal sets TotalAmount to the sum of price times quantity over
// all line items.
func (o *Order) RecomputeTotal() {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	o.TotalAmount = total
}

// Clone returns a deep copy of the order.
func (o *Order) Clone() *Order {
	c := *o
	c.CustomerName = cloneString(o.CustomerName)
	c.ShippingAddress = cloneString(o.ShippingAddress)
	c.BillingAddress = cloneString(o.BillingAddress)
	c.OrderPriority = cloneString(o.OrderPriority)
	c.ShippingMethod = cloneString(o.ShippingMethod)
	c.Items = make([]Item, len(o.Items))
	copy(c.Items, o.Items)
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
