package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/oms-integration/mockcommerce/pkg/errors"
	"github.com/oms-integration/mockcommerce/pkg/payload"
)

// decode builds a payload map from a JSON literal so numeric typing matches
// what the HTTP layer produces.
func decode(t *testing.T, body string) map[string]any {
	t.Helper()
	data, err := payload.Decode(strings.NewReader(body))
	require.NoError(t, err)
	return data
}

const validCreateBody = `{
	"customerDetails": {
		"customerId": "CUST-001",
		"email": "john.doe@example.com",
		"firstName": "John",
		"lastName": "Doe",
		"phone": "555-0101"
	},
	"itemsOrdered": [
		{"itemId": "ITEM-A", "productName": "Widget", "quantity": 2, "price": 3.5}
	],
	"shippingAddress": {
		"street": "123 Main St", "city": "Anytown", "state": "CA", "zip": "90210", "country": "USA"
	},
	"billingAddress": {
		"street": "123 Main St", "city": "Anytown", "state": "CA", "zip": "90210", "country": "USA"
	},
	"paymentDetails": {"paymentMethod": "CreditCard", "paymentStatus": "Authorized"},
	"notes": "ring twice"
}`

func codes(errs apperrors.FieldErrors) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Code
	}
	return out
}

func fields(errs apperrors.FieldErrors) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Field
	}
	return out
}

func TestValidateCreateAcceptsFullPayload(t *testing.T) {
	errs := ValidatePayload(decode(t, validCreateBody), false)
	assert.Empty(t, errs)
}

func TestValidateCreateAccumulatesAllViolations(t *testing.T) {
	// Missing top-level fields, a bad quantity, and a bad note all in one
	// payload: every violation must be reported, not just the first.
	body := `{
		"customerDetails": {"customerId": "C1", "email": "e", "firstName": "f", "lastName": "l", "phone": "p"},
		"itemsOrdered": [
			{"itemId": "A", "productName": "Widget", "quantity": 2.5, "price": 3.5}
		],
		"notes": 42
	}`
	errs := ValidatePayload(decode(t, body), false)

	assert.Contains(t, fields(errs), "shippingAddress")
	assert.Contains(t, fields(errs), "billingAddress")
	assert.Contains(t, fields(errs), "itemsOrdered[0].quantity")
	assert.Contains(t, fields(errs), "notes")
	assert.GreaterOrEqual(t, len(errs), 4)
}

func TestValidateQuantityMustBeWireInteger(t *testing.T) {
	base := `{
		"customerDetails": {"customerId": "C1", "email": "e", "firstName": "f", "lastName": "l", "phone": "p"},
		"shippingAddress": {"street": "s", "city": "c", "state": "st", "zip": "z", "country": "co"},
		"billingAddress": {"street": "s", "city": "c", "state": "st", "zip": "z", "country": "co"},
		"itemsOrdered": [{"itemId": "A", "productName": "W", "quantity": QTY, "price": 1.0}]
	}`

	// 2 is an integer on the wire; 2.0 and 2.5 are floats, "2" is a string.
	errs := ValidatePayload(decode(t, strings.ReplaceAll(base, "QTY", "2")), false)
	assert.Empty(t, errs)

	for _, qty := range []string{"2.0", "2.5", `"2"`} {
		errs := ValidatePayload(decode(t, strings.ReplaceAll(base, "QTY", qty)), false)
		require.Len(t, errs, 1, qty)
		assert.Equal(t, "INVALID_TYPE", errs[0].Code)
		assert.Equal(t, "Field itemsOrdered[0].quantity must be an integer.", errs[0].Message)
	}
}

func TestValidateRejectsNegativeQuantityAndPrice(t *testing.T) {
	body := `{
		"customerDetails": {"customerId": "C1", "email": "e", "firstName": "f", "lastName": "l", "phone": "p"},
		"shippingAddress": {"street": "s", "city": "c", "state": "st", "zip": "z", "country": "co"},
		"billingAddress": {"street": "s", "city": "c", "state": "st", "zip": "z", "country": "co"},
		"itemsOrdered": [{"itemId": "A", "productName": "W", "quantity": -1, "price": -0.5}]
	}`
	errs := ValidatePayload(decode(t, body), false)

	require.Len(t, errs, 2)
	assert.Equal(t, []string{"INVALID_VALUE", "INVALID_VALUE"}, codes(errs))
}

func TestValidateItemsMustBeNonEmptyList(t *testing.T) {
	for _, items := range []string{"[]", "null", `"x"`} {
		body := `{"itemsOrdered": ` + items + `}`
		errs := ValidatePayload(decode(t, body), true)

		require.Len(t, errs, 1, items)
		assert.Equal(t, "INVALID_FIELD", errs[0].Code)
		assert.Equal(t, "itemsOrdered must be a non-empty list.", errs[0].Message)
	}
}

func TestValidateItemMissingFieldsReported(t *testing.T) {
	body := `{"itemsOrdered": [{"itemId": "A"}]}`
	errs := ValidatePayload(decode(t, body), true)

	assert.Contains(t, fields(errs), "itemsOrdered[0].productName")
	assert.Contains(t, fields(errs), "itemsOrdered[0].quantity")
	assert.Contains(t, fields(errs), "itemsOrdered[0].price")
}

func TestValidatePaymentStatusEnum(t *testing.T) {
	body := `{"paymentDetails": {"paymentMethod": "CreditCard", "paymentStatus": "Declined"}}`
	errs := ValidatePayload(decode(t, body), true)

	require.Len(t, errs, 1)
	assert.Equal(t, "INVALID_VALUE", errs[0].Code)
	assert.Equal(t, "paymentDetails.paymentStatus", errs[0].Field)
}

func TestValidateNotesNullAllowed(t *testing.T) {
	errs := ValidatePayload(decode(t, `{"notes": null}`), true)
	assert.Empty(t, errs)
}

func TestValidateUpdateFieldsOptional(t *testing.T) {
	// An update may touch any subset; an empty patch is valid.
	errs := ValidatePayload(decode(t, `{}`), true)
	assert.Empty(t, errs)

	errs = ValidatePayload(decode(t, `{"customerDetails": {"email": "new@example.com"}}`), true)
	assert.Empty(t, errs)
}

func TestValidateUpdateOrderStatus(t *testing.T) {
	errs := ValidatePayload(decode(t, `{"orderStatus": "AwaitingShipment"}`), true)
	assert.Empty(t, errs)

	errs = ValidatePayload(decode(t, `{"orderStatus": "NotARealStatus"}`), true)
	require.Len(t, errs, 1)
	assert.Equal(t, "INVALID_VALUE", errs[0].Code)

	errs = ValidatePayload(decode(t, `{"orderStatus": 7}`), true)
	require.Len(t, errs, 1)
	assert.Equal(t, "INVALID_TYPE", errs[0].Code)
}

func TestValidateCreateMissingEverything(t *testing.T) {
	errs := ValidatePayload(decode(t, `{}`), false)

	require.Len(t, errs, 4)
	for _, e := range errs {
		assert.Equal(t, "MISSING_FIELD", e.Code)
	}
	assert.ElementsMatch(t,
		[]string{"customerDetails", "itemsOrdered", "shippingAddress", "billingAddress"},
		fields(errs))
}
