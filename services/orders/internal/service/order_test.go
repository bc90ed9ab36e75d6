package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/oms-integration/mockcommerce/pkg/errors"
	"github.com/oms-integration/mockcommerce/pkg/payload"
	"github.com/oms-integration/mockcommerce/services/orders/internal/domain"
	"github.com/oms-integration/mockcommerce/services/orders/internal/repository"
	"github.com/oms-integration/mockcommerce/services/orders/internal/repository/memory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newTestService wires the service to a real in-memory store with a pinned
// clock and sequential IDs.
func newTestService(t *testing.T) (*OrderService, *memory.OrderStore, *time.Time) {
	t.Helper()

	store := memory.NewOrderStore()
	svc := NewOrderService(store, testLogger())

	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("ORD-TEST-%d", seq)
	}

	return svc, store, &now
}

func listAll() repository.OrderFilter {
	return repository.OrderFilter{Limit: 100}
}

func decode(t *testing.T, body string) map[string]any {
	t.Helper()
	data, err := payload.Decode(strings.NewReader(body))
	require.NoError(t, err)
	return data
}

const createBody = `{
	"customerDetails": {
		"customerId": "CUST-42",
		"email": "a@example.com",
		"firstName": "Ada",
		"lastName": "Lovelace",
		"phone": "555-0000"
	},
	"itemsOrdered": [
		{"itemId": "A", "productName": "Widget", "quantity": 2, "price": 3.5}
	],
	"shippingAddress": {"street": "1 Way", "city": "Town", "state": "TS", "zip": "00001", "country": "US"},
	"billingAddress": {"street": "1 Way", "city": "Town", "state": "TS", "zip": "00001", "country": "US"}
}`

func TestCreateOrder(t *testing.T) {
	svc, _, now := newTestService(t)

	order, err := svc.CreateOrder(context.Background(), decode(t, createBody))

	require.NoError(t, err)
	assert.Equal(t, "ORD-TEST-1", order.ID)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, 7.0, order.Total)
	assert.Equal(t, *now, order.CreatedAt)
	assert.Equal(t, *now, order.UpdatedAt)
	assert.Equal(t, "CUST-42", order.Customer.CustomerID)

	// Round trip: the stored record equals the returned one.
	got, err := svc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order, got)
}

func TestCreateOrderDerivesTotalIgnoringClientValue(t *testing.T) {
	svc, _, _ := newTestService(t)

	data := decode(t, createBody)
	data["orderTotal"] = "999.99"

	order, err := svc.CreateOrder(context.Background(), data)

	require.NoError(t, err)
	assert.Equal(t, 7.0, order.Total)
}

func TestCreateOrderInvalidPayloadStoresNothing(t *testing.T) {
	svc, store, _ := newTestService(t)

	_, err := svc.CreateOrder(context.Background(), decode(t, `{"itemsOrdered": []}`))

	var fieldErrs apperrors.FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.NotEmpty(t, fieldErrs)

	_, total, listErr := store.List(context.Background(), listAll())
	require.NoError(t, listErr)
	assert.Equal(t, 0, total)
}

func TestUpdateOrderAdvancesLastUpdateOnly(t *testing.T) {
	svc, _, now := newTestService(t)
	order, err := svc.CreateOrder(context.Background(), decode(t, createBody))
	require.NoError(t, err)
	created := order.CreatedAt

	*now = now.Add(time.Hour)
	updated, err := svc.UpdateOrder(context.Background(), order.ID, decode(t, `{"notes": "updated"}`))

	require.NoError(t, err)
	assert.Equal(t, created, updated.CreatedAt)
	assert.Equal(t, created.Add(time.Hour), updated.UpdatedAt)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "updated", *updated.Notes)
}

func TestUpdateOrderRecomputesTotalOnItemChange(t *testing.T) {
	svc, _, _ := newTestService(t)
	order, err := svc.CreateOrder(context.Background(), decode(t, createBody))
	require.NoError(t, err)

	patch := `{"itemsOrdered": [
		{"itemId": "B", "productName": "Gadget", "quantity": 3, "price": 10.0},
		{"itemId": "C", "productName": "Sprocket", "quantity": 1, "price": 0.99}
	]}`
	updated, err := svc.UpdateOrder(context.Background(), order.ID, decode(t, patch))

	require.NoError(t, err)
	assert.Equal(t, 30.99, updated.Total)
	assert.Len(t, updated.Items, 2)
}

func TestUpdateOrderIgnoresUndocumentedFields(t *testing.T) {
	svc, _, _ := newTestService(t)
	order, err := svc.CreateOrder(context.Background(), decode(t, createBody))
	require.NoError(t, err)

	patch := `{"orderId": "HIJACKED", "orderDate": "1999-01-01", "orderTotal": 0.01, "surprise": true}`
	updated, err := svc.UpdateOrder(context.Background(), order.ID, decode(t, patch))

	require.NoError(t, err)
	assert.Equal(t, order.ID, updated.ID)
	assert.Equal(t, order.CreatedAt, updated.CreatedAt)
	assert.Equal(t, 7.0, updated.Total)
}

func TestUpdateTerminalOrderConflictsAndStaysIntact(t *testing.T) {
	for _, status := range []string{
		domain.OrderStatusShipped,
		domain.OrderStatusDelivered,
		domain.OrderStatusCancelled,
	} {
		t.Run(status, func(t *testing.T) {
			svc, _, _ := newTestService(t)
			order, err := svc.CreateOrder(context.Background(), decode(t, createBody))
			require.NoError(t, err)

			_, err = svc.UpdateOrder(context.Background(), order.ID,
				decode(t, `{"orderStatus": "`+status+`"}`))
			require.NoError(t, err)

			_, err = svc.UpdateOrder(context.Background(), order.ID, decode(t, `{"notes": "nope"}`))

			var appErr *apperrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "CONFLICT_ERROR", appErr.Code)
			assert.Contains(t, appErr.Message, status)

			// The rejected update must not have touched the record.
			got, err := svc.GetOrder(context.Background(), order.ID)
			require.NoError(t, err)
			assert.Nil(t, got.Notes)
			assert.Equal(t, status, got.Status)
		})
	}
}

func TestUpdateOrderInvalidPatchLeavesRecordUntouched(t *testing.T) {
	svc, _, _ := newTestService(t)
	order, err := svc.CreateOrder(context.Background(), decode(t, createBody))
	require.NoError(t, err)

	patch := `{"notes": "will not apply", "itemsOrdered": []}`
	_, err = svc.UpdateOrder(context.Background(), order.ID, decode(t, patch))

	var fieldErrs apperrors.FieldErrors
	require.True(t, errors.As(err, &fieldErrs))

	got, err := svc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Notes)
	assert.Len(t, got.Items, 1)
}

func TestCancelOrder(t *testing.T) {
	svc, _, now := newTestService(t)
	order, err := svc.CreateOrder(context.Background(), decode(t, createBody))
	require.NoError(t, err)

	*now = now.Add(time.Minute)
	require.NoError(t, svc.CancelOrder(context.Background(), order.ID))

	got, err := svc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, got.Status)
	assert.Equal(t, order.CreatedAt.Add(time.Minute), got.UpdatedAt)

	// Cancelling again conflicts; cancellation is terminal.
	err = svc.CancelOrder(context.Background(), order.ID)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CONFLICT_ERROR", appErr.Code)
}

func TestCancelOrderNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.CancelOrder(context.Background(), "missing")

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestListOrdersRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, _, err := svc.ListOrders(context.Background(), ListQuery{Status: "NotARealStatus", Limit: 20})

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_PARAMETER", appErr.Code)
	assert.Contains(t, appErr.Message, "Invalid status value.")
}

func TestListOrdersRejectsMalformedDates(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, _, err := svc.ListOrders(context.Background(), ListQuery{DateFrom: "03/01/2026", Limit: 20})
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Invalid dateFrom format. Use YYYY-MM-DD.", appErr.Message)

	_, _, err = svc.ListOrders(context.Background(), ListQuery{DateTo: "yesterday", Limit: 20})
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Invalid dateTo format. Use YYYY-MM-DD.", appErr.Message)
}

func TestListOrdersFiltersByCustomer(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.CreateOrder(context.Background(), decode(t, createBody))
	require.NoError(t, err)

	other := decode(t, createBody)
	cust := other["customerDetails"].(map[string]any)
	cust["customerId"] = "CUST-OTHER"
	_, err = svc.CreateOrder(context.Background(), other)
	require.NoError(t, err)

	orders, total, err := svc.ListOrders(context.Background(), ListQuery{CustomerID: "CUST-42", Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, orders, 1)
	assert.Equal(t, "CUST-42", orders[0].Customer.CustomerID)
}
