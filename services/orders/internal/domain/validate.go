package domain

import (
	"fmt"

	apperrors "github.com/oms-integration/mockcommerce/pkg/errors"
	"github.com/oms-integration/mockcommerce/pkg/payload"
)

// ValidatePayload checks an order payload against the documented schema and
// returns every violation found, never just the first. For creation all
// required fields must be present; for an update (isUpdate=true) every field
// is optional, but any field present must still satisfy its type, shape, and
// enum rules.
func ValidatePayload(data map[string]any, isUpdate bool) apperrors.FieldErrors {
	var errs apperrors.FieldErrors

	if !isUpdate {
		for _, field := range []string{"customerDetails", "itemsOrdered", "shippingAddress", "billingAddress"} {
			if _, ok := data[field]; !ok {
				errs.Add("MISSING_FIELD", "Missing required field: "+field, field)
			}
		}
	}

	if v, ok := data["customerDetails"]; ok {
		validateCustomer(v, &errs, isUpdate)
	}
	if v, ok := data["itemsOrdered"]; ok {
		validateItems(v, &errs)
	}
	if v, ok := data["shippingAddress"]; ok {
		validateAddress(v, "shippingAddress", &errs, isUpdate)
	}
	if v, ok := data["billingAddress"]; ok {
		validateAddress(v, "billingAddress", &errs, isUpdate)
	}
	if v, ok := data["paymentDetails"]; ok {
		validatePayment(v, &errs, isUpdate)
	}
	if v, ok := data["notes"]; ok && v != nil {
		if _, isStr := payload.String(v); !isStr {
			errs.Add("INVALID_TYPE", "Field notes must be a string or null.", "notes")
		}
	}
	if isUpdate {
		if v, ok := data["orderStatus"]; ok {
			status, isStr := payload.String(v)
			switch {
			case !isStr:
				errs.Add("INVALID_TYPE", "Field orderStatus must be a string.", "orderStatus")
			case !IsValidStatus(status):
				errs.Add("INVALID_VALUE", fmt.Sprintf("Field orderStatus must be one of %v.", ValidStatuses()), "orderStatus")
			}
		}
	}

	return errs
}

func validateCustomer(v any, errs *apperrors.FieldErrors, isUpdate bool) {
	customer, ok := payload.Object(v)
	if !ok {
		errs.Add("INVALID_TYPE", "customerDetails must be an object.", "customerDetails")
		return
	}
	for _, field := range []string{"customerId", "email", "firstName", "lastName", "phone"} {
		fv, present := customer[field]
		if !present {
			if !isUpdate {
				errs.Add("MISSING_FIELD", "Missing required field in customerDetails: "+field, "customerDetails."+field)
			}
			continue
		}
		if _, isStr := payload.String(fv); !isStr {
			errs.Add("INVALID_TYPE", fmt.Sprintf("Field customerDetails.%s must be a string.", field), "customerDetails."+field)
		}
	}
}

func validateItems(v any, errs *apperrors.FieldErrors) {
	// A non-empty list is required whenever itemsOrdered appears, including
	// in a patch: itemsOrdered may be omitted but never null or empty.
	items, ok := payload.List(v)
	if !ok || len(items) == 0 {
		errs.Add("INVALID_FIELD", "itemsOrdered must be a non-empty list.", "itemsOrdered")
		return
	}

	for i, entry := range items {
		item, ok := payload.Object(entry)
		if !ok {
			errs.Add("INVALID_TYPE", "Each item in itemsOrdered must be an object.", fmt.Sprintf("itemsOrdered[%d]", i))
			continue
		}
		for _, field := range []string{"itemId", "productName", "quantity", "price"} {
			fv, present := item[field]
			if !present {
				errs.Add("MISSING_FIELD", fmt.Sprintf("Missing required field in itemsOrdered[%d]: %s", i, field), fmt.Sprintf("itemsOrdered[%d].%s", i, field))
				continue
			}
			if field == "itemId" || field == "productName" {
				if _, isStr := payload.String(fv); !isStr {
					errs.Add("INVALID_TYPE", fmt.Sprintf("Field itemsOrdered[%d].%s must be a string.", i, field), fmt.Sprintf("itemsOrdered[%d].%s", i, field))
				}
			}
		}
		if qv, present := item["quantity"]; present {
			q, isInt := payload.Int(qv)
			if !isInt {
				errs.Add("INVALID_TYPE", fmt.Sprintf("Field itemsOrdered[%d].quantity must be an integer.", i), fmt.Sprintf("itemsOrdered[%d].quantity", i))
			} else if q < 0 {
				errs.Add("INVALID_VALUE", fmt.Sprintf("Field itemsOrdered[%d].quantity must be non-negative.", i), fmt.Sprintf("itemsOrdered[%d].quantity", i))
			}
		}
		if pv, present := item["price"]; present {
			p, isNum := payload.Number(pv)
			if !isNum {
				errs.Add("INVALID_TYPE", fmt.Sprintf("Field itemsOrdered[%d].price must be a number.", i), fmt.Sprintf("itemsOrdered[%d].price", i))
			} else if p < 0 {
				errs.Add("INVALID_VALUE", fmt.Sprintf("Field itemsOrdered[%d].price must be non-negative.", i), fmt.Sprintf("itemsOrdered[%d].price", i))
			}
		}
	}
}

func validateAddress(v any, name string, errs *apperrors.FieldErrors, isUpdate bool) {
	address, ok := payload.Object(v)
	if !ok {
		errs.Add("INVALID_TYPE", name+" must be an object.", name)
		return
	}
	for _, field := range []string{"street", "city", "state", "zip", "country"} {
		fv, present := address[field]
		if !present {
			if !isUpdate {
				errs.Add("MISSING_FIELD", fmt.Sprintf("Missing required field in %s: %s", name, field), name+"."+field)
			}
			continue
		}
		if _, isStr := payload.String(fv); !isStr {
			errs.Add("INVALID_TYPE", fmt.Sprintf("Field %s.%s must be a string.", name, field), name+"."+field)
		}
	}
}

func validatePayment(v any, errs *apperrors.FieldErrors, isUpdate bool) {
	pd, ok := payload.Object(v)
	if !ok {
		errs.Add("INVALID_TYPE", "paymentDetails must be an object.", "paymentDetails")
		return
	}

	if mv, present := pd["paymentMethod"]; present {
		if _, isStr := payload.String(mv); !isStr {
			errs.Add("INVALID_TYPE", "Field paymentDetails.paymentMethod must be a string.", "paymentDetails.paymentMethod")
		}
	} else if !isUpdate {
		errs.Add("MISSING_FIELD", "Missing required field in paymentDetails: paymentMethod", "paymentDetails.paymentMethod")
	}

	if tv, present := pd["transactionId"]; present {
		if _, isStr := payload.String(tv); !isStr {
			errs.Add("INVALID_TYPE", "Field paymentDetails.transactionId must be a string.", "paymentDetails.transactionId")
		}
	}

	if sv, present := pd["paymentStatus"]; present {
		status, isStr := payload.String(sv)
		switch {
		case !isStr:
			errs.Add("INVALID_TYPE", "Field paymentDetails.paymentStatus must be a string.", "paymentDetails.paymentStatus")
		case !IsValidPaymentStatus(status):
			errs.Add("INVALID_VALUE", fmt.Sprintf("Field paymentDetails.paymentStatus must be one of %v.", ValidPaymentStatuses()), "paymentDetails.paymentStatus")
		}
	}
}
