package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/oms-integration/mockcommerce/pkg/errors"
	"github.com/oms-integration/mockcommerce/pkg/payload"
	"github.com/oms-integration/mockcommerce/services/orders/internal/domain"
	"github.com/oms-integration/mockcommerce/services/orders/internal/repository"
)

// OrderService implements the order lifecycle: creation with full payload
// validation, guarded updates, soft cancellation, and filtered listing.
type OrderService struct {
	repo   repository.OrderRepository
	logger *slog.Logger

	// Clock and ID generation are swappable so tests can pin them.
	now   func() time.Time
	newID func() string
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.OrderRepository, logger *slog.Logger) *OrderService {
	return &OrderService{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
}

// CreateOrder validates the raw payload and, if every check passes, stores a
// new order with a generated ID, Pending status, and a derived total. On
// validation failure the full batch of violations is returned and nothing is
// stored.
func (s *OrderService) CreateOrder(ctx context.Context, data map[string]any) (*domain.Order, error) {
	if errs := domain.ValidatePayload(data, false); len(errs) > 0 {
		return nil, errs
	}

	now := s.now()
	order := &domain.Order{
		ID:        s.newID(),
		CreatedAt: now,
		UpdatedAt: now,
		Status:    domain.OrderStatusPending,
	}
	if v, ok := payload.Object(data["customerDetails"]); ok {
		order.Customer = toCustomer(v)
	}
	if v, ok := payload.List(data["itemsOrdered"]); ok {
		order.Items = toItems(v)
	}
	if v, ok := payload.Object(data["shippingAddress"]); ok {
		order.ShippingAddress = toAddress(v)
	}
	if v, ok := payload.Object(data["billingAddress"]); ok {
		order.BillingAddress = toAddress(v)
	}
	if v, ok := payload.Object(data["paymentDetails"]); ok {
		order.Payment = toPayment(v)
	}
	if v, ok := payload.String(data["notes"]); ok {
		order.Notes = &v
	}
	order.Total = domain.ComputeTotal(order.Items)

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.logger.InfoContext(ctx, "order created",
		slog.String("order_id", order.ID),
		slog.String("customer_id", order.Customer.CustomerID),
		slog.Float64("order_total", order.Total),
	)

	return order, nil
}

// GetOrder retrieves an order by its ID.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// ListQuery holds the raw filter and pagination inputs for a listing.
type ListQuery struct {
	CustomerID string
	Status     string
	DateFrom   string
	DateTo     string
	Limit      int
	Offset     int
}

// ListOrders returns the filtered page of orders plus the total number of
// matches before pagination. Filter values are validated here: an
// unrecognized status or a malformed date bound fails the whole request.
func (s *OrderService) ListOrders(ctx context.Context, q ListQuery) ([]domain.Order, int, error) {
	filter := repository.OrderFilter{Limit: q.Limit, Offset: q.Offset}

	if q.CustomerID != "" {
		filter.CustomerID = &q.CustomerID
	}
	if q.Status != "" {
		if !domain.IsValidStatus(q.Status) {
			return nil, 0, apperrors.InvalidParameter(fmt.Sprintf("Invalid status value. Allowed: %v", domain.ValidStatuses()))
		}
		filter.Status = &q.Status
	}
	if q.DateFrom != "" {
		t, err := time.ParseInLocation("2006-01-02", q.DateFrom, time.UTC)
		if err != nil {
			return nil, 0, apperrors.InvalidParameter("Invalid dateFrom format. Use YYYY-MM-DD.")
		}
		filter.DateFrom = &t
	}
	if q.DateTo != "" {
		t, err := time.ParseInLocation("2006-01-02", q.DateTo, time.UTC)
		if err != nil {
			return nil, 0, apperrors.InvalidParameter("Invalid dateTo format. Use YYYY-MM-DD.")
		}
		filter.DateTo = &t
	}

	return s.repo.List(ctx, filter)
}

// UpdateOrder applies a partial update to an existing order. Orders in a
// terminal state reject the update with a conflict. Only documented fields
// are applied; orderId, orderDate, and orderTotal in the patch are ignored,
// and the total is recomputed whenever the items change.
func (s *OrderService) UpdateOrder(ctx context.Context, id string, data map[string]any) (*domain.Order, error) {
	order, err := s.repo.Mutate(ctx, id, func(o *domain.Order) error {
		if o.IsTerminal() {
			return apperrors.Conflict(fmt.Sprintf("Order %s cannot be updated in its current state: %s.", id, o.Status))
		}
		if errs := domain.ValidatePayload(data, true); len(errs) > 0 {
			return errs
		}
		applyPatch(o, data)
		o.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "order updated", slog.String("order_id", id))
	return order, nil
}

// CancelOrder transitions an order to Cancelled. Orders already in a
// terminal state reject the cancellation with a conflict; cancellation is a
// status transition, not a removal.
func (s *OrderService) CancelOrder(ctx context.Context, id string) error {
	_, err := s.repo.Mutate(ctx, id, func(o *domain.Order) error {
		if o.IsTerminal() {
			return apperrors.Conflict(fmt.Sprintf("Order %s cannot be cancelled in its current state: %s.", id, o.Status))
		}
		o.Status = domain.OrderStatusCancelled
		o.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "order cancelled", slog.String("order_id", id))
	return nil
}

// applyPatch copies the documented fields present in data onto the order.
// A present sub-object replaces the stored one wholesale, mirroring the
// system being stubbed.
func applyPatch(o *domain.Order, data map[string]any) {
	if v, ok := data["customerDetails"]; ok {
		if obj, isObj := payload.Object(v); isObj {
			o.Customer = toCustomer(obj)
		}
	}
	if v, ok := data["itemsOrdered"]; ok {
		if list, isList := payload.List(v); isList {
			o.Items = toItems(list)
			o.Total = domain.ComputeTotal(o.Items)
		}
	}
	if v, ok := data["shippingAddress"]; ok {
		if obj, isObj := payload.Object(v); isObj {
			o.ShippingAddress = toAddress(obj)
		}
	}
	if v, ok := data["billingAddress"]; ok {
		if obj, isObj := payload.Object(v); isObj {
			o.BillingAddress = toAddress(obj)
		}
	}
	if v, ok := data["paymentDetails"]; ok {
		if obj, isObj := payload.Object(v); isObj {
			o.Payment = toPayment(obj)
		}
	}
	if v, ok := data["notes"]; ok {
		if v == nil {
			o.Notes = nil
		} else if str, isStr := payload.String(v); isStr {
			o.Notes = &str
		}
	}
	if v, ok := data["orderStatus"]; ok {
		if status, isStr := payload.String(v); isStr {
			o.Status = status
		}
	}
}

func toCustomer(m map[string]any) domain.Customer {
	c := domain.Customer{}
	c.CustomerID, _ = payload.String(m["customerId"])
	c.Email, _ = payload.String(m["email"])
	c.FirstName, _ = payload.String(m["firstName"])
	c.LastName, _ = payload.String(m["lastName"])
	c.Phone, _ = payload.String(m["phone"])
	return c
}

func toAddress(m map[string]any) domain.Address {
	a := domain.Address{}
	a.Street, _ = payload.String(m["street"])
	a.City, _ = payload.String(m["city"])
	a.State, _ = payload.String(m["state"])
	a.Zip, _ = payload.String(m["zip"])
	a.Country, _ = payload.String(m["country"])
	return a
}

func toItems(list []any) []domain.LineItem {
	items := make([]domain.LineItem, 0, len(list))
	for _, entry := range list {
		m, ok := payload.Object(entry)
		if !ok {
			continue
		}
		item := domain.LineItem{}
		item.ItemID, _ = payload.String(m["itemId"])
		item.ProductName, _ = payload.String(m["productName"])
		item.Quantity, _ = payload.Int(m["quantity"])
		item.Price, _ = payload.Number(m["price"])
		items = append(items, item)
	}
	return items
}

func toPayment(m map[string]any) *domain.Payment {
	p := &domain.Payment{}
	p.PaymentMethod, _ = payload.String(m["paymentMethod"])
	p.TransactionID, _ = payload.String(m["transactionId"])
	p.PaymentStatus, _ = payload.String(m["paymentStatus"])
	return p
}
