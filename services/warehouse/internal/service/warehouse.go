package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	apperrors "github.com/oms-integration/mockcommerce/pkg/errors"
	"github.com/oms-integration/mockcommerce/pkg/payload"
	"github.com/oms-integration/mockcommerce/services/warehouse/internal/domain"
	"github.com/oms-integration/mockcommerce/services/warehouse/internal/repository"
)

// Fields of an order a PATCH request may set directly. Items are handled
// separately; unknown fields are ignored.
var simplePatchFields = map[string]bool{
	"billingAddress":  true,
	"customerName":    true,
	"orderPriority":   true,
	"shippingAddress": true,
	"shippingMethod":  true,
	"totalAmount":     true,
}

// WarehouseService implements the warehouse order business logic.
type WarehouseService struct {
	repo   repository.WarehouseRepository
	logger *slog.Logger

	// Injectable for deterministic tests.
	newID func() string
}

// NewWarehouseService creates a new warehouse service.
func NewWarehouseService(repo repository.WarehouseRepository, logger *slog.Logger) *WarehouseService {
	return &WarehouseService{
		repo:   repo,
		logger: logger,
		newID:  uuid.NewString,
	}
}

// ItemInput carries the validated fields of an item intake or replacement
// request. ProductID holds the request's itemId, which identifies the
// product rather than a line item.
type ItemInput struct {
	ProductID   string
	ProductName string
	Quantity    int
	Price       float64
}

// CreateOrder creates a single-item order from an item intake request and
// returns the item representation of the new line.
func (s *WarehouseService) CreateOrder(ctx context.Context, in ItemInput) (domain.ItemView, error) {
	orderID := s.newID()
	lineItemID := s.newID()

	order := &domain.Order{
		OrderID: orderID,
		Items: []domain.Item{
			{
				ItemID:      lineItemID,
				ProductID:   in.ProductID,
				ProductName: in.ProductName,
				Quantity:    in.Quantity,
				Price:       in.Price,
			},
		},
		Status:      "Awaiting Fulfillment",
		TotalAmount: in.Price * float64(in.Quantity),
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return domain.ItemView{}, fmt.Errorf("create warehouse order: %w", err)
	}

	s.logger.Info("warehouse order created",
		slog.String("order_id", orderID),
		slog.String("product_id", in.ProductID),
	)

	view, _ := order.ItemView()
	return view, nil
}

// GetOrder returns the item representation of an order.
func (s *WarehouseService) GetOrder(ctx context.Context, id string) (domain.ItemView, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.ItemView{}, err
	}

	view, ok := order.ItemView()
	if !ok {
		return domain.ItemView{}, representationError("NO_ITEM_REPRESENTATION",
			"Order found but no item data available for itemordered representation.")
	}
	return view, nil
}

// ReplaceFirstItem updates the first line item of an order from an item
// replacement request and recomputes the order total. An order without
// items gets a fresh line created from the request.
func (s *WarehouseService) ReplaceFirstItem(ctx context.Context, id string, in ItemInput) (domain.ItemView, error) {
	updated, err := s.repo.Mutate(ctx, id, func(order *domain.Order) error {
		if len(order.Items) == 0 {
			order.Items = []domain.Item{
				{
					ItemID:      s.newID(),
					ProductID:   in.ProductID,
					ProductName: in.ProductName,
					Quantity:    in.Quantity,
					Price:       in.Price,
				},
			}
		} else {
			// The line item keeps its identifier; only its content changes.
			order.Items[0].ProductID = in.ProductID
			order.Items[0].ProductName = in.ProductName
			order.Items[0].Quantity = in.Quantity
			order.Items[0].Price = in.Price
		}
		order.RecomputeTotal()
		return nil
	})
	if err != nil {
		return domain.ItemView{}, err
	}

	view, ok := updated.ItemView()
	if !ok {
		return domain.ItemView{}, representationError("UPDATE_FAILED_REPRESENTATION",
			"Order updated, but failed to create itemordered representation.")
	}
	return view, nil
}

// PatchOrder applies a partial update. Simple fields are set directly, an
// items list replaces all line items, and unknown fields are ignored. The
// total is recomputed after an items replacement unless the patch set
// totalAmount explicitly.
func (s *WarehouseService) PatchOrder(ctx context.Context, id string, data map[string]any) (domain.ItemView, error) {
	updated, err := s.repo.Mutate(ctx, id, func(order *domain.Order) error {
		for key, value := range data {
			if simplePatchFields[key] {
				if err := applySimpleField(order, key, value); err != nil {
					return err
				}
			}
		}

		if rawItems, ok := data["items"]; ok {
			items, err := s.parseItems(rawItems)
			if err != nil {
				return err
			}
			order.Items = items
			if _, ok := data["totalAmount"]; !ok {
				order.RecomputeTotal()
			}
		}
		return nil
	})
	if err != nil {
		return domain.ItemView{}, err
	}

	view, ok := updated.ItemView()
	if !ok {
		return domain.ItemView{}, representationError("PATCH_FAILED_REPRESENTATION",
			"Order updated, but no item data available for itemordered representation.")
	}
	return view, nil
}

// UpdateStatus sets the order status and returns the item representation.
func (s *WarehouseService) UpdateStatus(ctx context.Context, id, status string) (domain.ItemView, error) {
	updated, err := s.repo.Mutate(ctx, id, func(order *domain.Order) error {
		order.Status = status
		return nil
	})
	if err != nil {
		return domain.ItemView{}, err
	}

	s.logger.Info("warehouse order status updated",
		slog.String("order_id", id),
		slog.String("status", status),
	)

	view, ok := updated.ItemView()
	if !ok {
		return domain.ItemView{}, representationError("STATUS_UPDATE_FAILED_REPRESENTATION",
			"Status updated, but no item data for itemordered representation.")
	}
	return view, nil
}

// DeleteOrder removes an order.
func (s *WarehouseService) DeleteOrder(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("warehouse order deleted", slog.String("order_id", id))
	return nil
}

func applySimpleField(order *domain.Order, key string, value any) error {
	if key == "totalAmount" {
		n, ok := payload.Number(value)
		if !ok {
			return fieldTypeError("Field 'totalAmount' must be a number.", "totalAmount")
		}
		order.TotalAmount = n
		return nil
	}

	var target **string
	switch key {
	case "billingAddress":
		target = &order.BillingAddress
	case "customerName":
		target = &order.CustomerName
	case "orderPriority":
		target = &order.OrderPriority
	case "shippingAddress":
		target = &order.ShippingAddress
	case "shippingMethod":
		target = &order.ShippingMethod
	}

	if value == nil {
		*target = nil
		return nil
	}
	s, ok := payload.String(value)
	if !ok {
		return fieldTypeError(fmt.Sprintf("Field '%s' must be a string or null.", key), key)
	}
	*target = &s
	return nil
}

// parseItems validates an items patch and builds the replacement lines.
// The patch schema carries only productId and quantity, so names and
// prices are filled with placeholders.
func (s *WarehouseService) parseItems(raw any) ([]domain.Item, error) {
	list, ok := payload.List(raw)
	if !ok {
		return nil, fieldTypeError("Field 'items' must be an array.", "items")
	}

	invalidStructure := &apperrors.AppError{
		Code:    "INVALID_ITEM_STRUCTURE",
		Message: "Each item must be an object with 'productId' (string) and 'quantity' (integer).",
		Field:   "items",
		Status:  http.StatusBadRequest,
		Err:     apperrors.ErrInvalidInput,
	}

	items := make([]domain.Item, 0, len(list))
	for _, entry := range list {
		obj, ok := payload.Object(entry)
		if !ok {
			return nil, invalidStructure
		}
		productID, ok := payload.String(obj["productId"])
		if !ok {
			return nil, invalidStructure
		}
		quantity, ok := payload.Int(obj["quantity"])
		if !ok {
			return nil, invalidStructure
		}

		items = append(items, domain.Item{
			ItemID:      s.newID(),
			ProductID:   productID,
			ProductName: fmt.Sprintf("Product %s", productID),
			Quantity:    quantity,
			Price:       0.0,
		})
	}
	return items, nil
}

func fieldTypeError(message, field string) error {
	return &apperrors.AppError{
		Code:    "INVALID_FIELD_TYPE",
		Message: message,
		Field:   field,
		Status:  http.StatusBadRequest,
		Err:     apperrors.ErrInvalidInput,
	}
}

func representationError(code, message string) error {
	return &apperrors.AppError{
		Code:    code,
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     apperrors.ErrInternal,
	}
}
