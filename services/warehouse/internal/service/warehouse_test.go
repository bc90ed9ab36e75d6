package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/oms-integration/mockcommerce/pkg/errors"
	"github.com/oms-integration/mockcommerce/pkg/payload"
	"github.com/oms-integration/mockcommerce/services/warehouse/internal/domain"
	"github.com/oms-integration/mockcommerce/services/warehouse/internal/repository/memory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestService(t *testing.T) (*WarehouseService, *memory.OrderStore) {
	t.Helper()

	store := memory.NewOrderStore()
	svc := NewWarehouseService(store, testLogger())

	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("wh-id-%d", seq)
	}
	return svc, store
}

func decode(t *testing.T, body string) map[string]any {
	t.Helper()
	data, err := payload.Decode(strings.NewReader(body))
	require.NoError(t, err)
	return data
}

func TestCreateOrderWrapsItem(t *testing.T) {
	svc, store := newTestService(t)

	view, err := svc.CreateOrder(context.Background(), ItemInput{
		ProductID:   "PROD009",
		ProductName: "Desk Lamp",
		Quantity:    3,
		Price:       19.99,
	})

	require.NoError(t, err)
	// The response carries the generated line item ID, not the product ID.
	assert.Equal(t, "wh-id-2", view.ItemID)
	assert.Equal(t, "Desk Lamp", view.ProductName)
	assert.Equal(t, 3, view.Quantity)
	assert.Equal(t, 19.99, view.Price)

	order, err := store.GetByID(context.Background(), "wh-id-1")
	require.NoError(t, err)
	assert.Equal(t, "Awaiting Fulfillment", order.Status)
	assert.Nil(t, order.CustomerName)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "PROD009", order.Items[0].ProductID)
	assert.InDelta(t, 59.97, order.TotalAmount, 1e-9)
}

func TestGetOrderReturnsFirstItem(t *testing.T) {
	svc, store := newTestService(t)
	store.Seed()

	view, err := svc.GetOrder(context.Background(), "order_init_1")

	require.NoError(t, err)
	assert.Equal(t, "Laptop Pro", view.ProductName)
	assert.Equal(t, 1, view.Quantity)
	assert.Equal(t, 1200.00, view.Price)
}

func TestGetOrderNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetOrder(context.Background(), "missing")

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ORDER_NOT_FOUND", appErr.Code)
	assert.Equal(t, "orderId", appErr.Field)
	assert.Equal(t, 404, appErr.Status)
}

func TestReplaceFirstItemKeepsLineID(t *testing.T) {
	svc, store := newTestService(t)
	store.Seed()

	before, err := store.GetByID(context.Background(), "order_init_1")
	require.NoError(t, err)
	originalLineID := before.Items[0].ItemID

	view, err := svc.ReplaceFirstItem(context.Background(), "order_init_1", ItemInput{
		ProductID:   "PROD010",
		ProductName: "Monitor",
		Quantity:    2,
		Price:       300.00,
	})

	require.NoError(t, err)
	assert.Equal(t, originalLineID, view.ItemID)
	assert.Equal(t, "Monitor", view.ProductName)

	after, err := store.GetByID(context.Background(), "order_init_1")
	require.NoError(t, err)
	assert.Equal(t, "PROD010", after.Items[0].ProductID)
	// Second line (Wireless Mouse, 25.00) still counts toward the total.
	assert.InDelta(t, 625.00, after.TotalAmount, 1e-9)
}

func TestPatchOrderSimpleFields(t *testing.T) {
	svc, store := newTestService(t)
	store.Seed()

	patch := `{"customerName": "New Name", "orderPriority": null, "totalAmount": 42.5, "ignoredField": true}`
	_, err := svc.PatchOrder(context.Background(), "order_init_1", decode(t, patch))
	require.NoError(t, err)

	order, err := store.GetByID(context.Background(), "order_init_1")
	require.NoError(t, err)
	require.NotNil(t, order.CustomerName)
	assert.Equal(t, "New Name", *order.CustomerName)
	assert.Nil(t, order.OrderPriority)
	assert.Equal(t, 42.5, order.TotalAmount)
}

func TestPatchOrderReplacesItemsAndRecomputes(t *testing.T) {
	svc, store := newTestService(t)
	store.Seed()

	patch := `{"items": [
		{"productId": "PROD100", "quantity": 2},
		{"productId": "PROD200", "quantity": 5}
	]}`
	view, err := svc.PatchOrder(context.Background(), "order_init_1", decode(t, patch))
	require.NoError(t, err)

	// Patched items get placeholder names and zero prices.
	assert.Equal(t, "Product PROD100", view.ProductName)
	assert.Equal(t, 2, view.Quantity)
	assert.Equal(t, 0.0, view.Price)

	order, err := store.GetByID(context.Background(), "order_init_1")
	require.NoError(t, err)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 0.0, order.TotalAmount)
}

func TestPatchOrderItemsWithExplicitTotalKeepsIt(t *testing.T) {
	svc, store := newTestService(t)
	store.Seed()

	patch := `{"totalAmount": 99.0, "items": [{"productId": "P", "quantity": 1}]}`
	_, err := svc.PatchOrder(context.Background(), "order_init_1", decode(t, patch))
	require.NoError(t, err)

	order, err := store.GetByID(context.Background(), "order_init_1")
	require.NoError(t, err)
	assert.Equal(t, 99.0, order.TotalAmount)
}

func TestPatchOrderRejectsBadItemStructure(t *testing.T) {
	svc, store := newTestService(t)
	store.Seed()

	for _, patch := range []string{
		`{"items": "nope"}`,
		`{"items": [42]}`,
		`{"items": [{"productId": 7, "quantity": 1}]}`,
		`{"items": [{"productId": "P", "quantity": 1.5}]}`,
		`{"items": [{"productId": "P"}]}`,
	} {
		_, err := svc.PatchOrder(context.Background(), "order_init_1", decode(t, patch))

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr), patch)
		assert.Contains(t, []string{"INVALID_FIELD_TYPE", "INVALID_ITEM_STRUCTURE"}, appErr.Code, patch)
	}

	// Failed patches must leave the order untouched.
	order, err := store.GetByID(context.Background(), "order_init_1")
	require.NoError(t, err)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, 1225.00, order.TotalAmount)
}

func TestUpdateStatus(t *testing.T) {
	svc, store := newTestService(t)
	store.Seed()

	view, err := svc.UpdateStatus(context.Background(), "order_init_2", "Packed")

	require.NoError(t, err)
	assert.Equal(t, "Coffee Maker", view.ProductName)

	order, err := store.GetByID(context.Background(), "order_init_2")
	require.NoError(t, err)
	assert.Equal(t, "Packed", order.Status)
}

func TestDeleteOrderIsHardDelete(t *testing.T) {
	svc, store := newTestService(t)
	store.Seed()

	require.NoError(t, svc.DeleteOrder(context.Background(), "order_init_1"))

	_, err := store.GetByID(context.Background(), "order_init_1")
	assert.Error(t, err)

	err = svc.DeleteOrder(context.Background(), "order_init_1")
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ORDER_NOT_FOUND", appErr.Code)
}

func TestGetOrderWithoutItemsIsInternalError(t *testing.T) {
	svc, store := newTestService(t)
	require.NoError(t, store.Create(context.Background(), &domain.Order{
		OrderID: "empty-1",
		Status:  "Awaiting Fulfillment",
	}))

	_, err := svc.GetOrder(context.Background(), "empty-1")

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NO_ITEM_REPRESENTATION", appErr.Code)
	assert.Equal(t, 500, appErr.Status)
}

func TestReplaceFirstItemOnEmptyOrderCreatesLine(t *testing.T) {
	svc, store := newTestService(t)
	require.NoError(t, store.Create(context.Background(), &domain.Order{
		OrderID: "empty-2",
		Status:  "Awaiting Fulfillment",
	}))

	view, err := svc.ReplaceFirstItem(context.Background(), "empty-2", ItemInput{
		ProductID:   "PROD001",
		ProductName: "Laptop Pro",
		Quantity:    1,
		Price:       1200.00,
	})

	require.NoError(t, err)
	assert.Equal(t, "Laptop Pro", view.ProductName)

	order, err := store.GetByID(context.Background(), "empty-2")
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 1200.00, order.TotalAmount)
}
