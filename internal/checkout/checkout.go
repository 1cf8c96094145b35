// Package checkout turns a raw checkout request body into typed line items.
package checkout

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"github.com/fairyhunter13/product-catalog-api/internal/model"
)

// ValidationError describes why a checkout body was rejected.
// Index is -1 when the body as a whole is at fault.
type ValidationError struct {
	Index  int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Index < 0:
		return e.Reason
	case e.Field == "":
		return fmt.Sprintf("item %d: %s", e.Index, e.Reason)
	default:
		return fmt.Sprintf("item %d: %s %s", e.Index, e.Field, e.Reason)
	}
}

// Parse checks that body is a JSON array of {productId, quantity} objects
// whose two fields are JSON numbers. Any number is accepted, including
// fractions and exponent forms; product ids are not checked against the
// catalog. When an object repeats a key the last occurrence wins.
func Parse(body []byte) ([]model.LineItem, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &ValidationError{Index: -1, Reason: "body is empty"}
	}
	if !gjson.ValidBytes(body) {
		return nil, &ValidationError{Index: -1, Reason: "body is not valid JSON"}
	}
	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, &ValidationError{Index: -1, Reason: "body must be a JSON array"}
	}

	elems := root.Array()
	items := make([]model.LineItem, 0, len(elems))
	for i, el := range elems {
		if !el.IsObject() {
			return nil, &ValidationError{Index: i, Reason: "must be an object"}
		}
		pid, err := numberField(el, i, "productId")
		if err != nil {
			return nil, err
		}
		qty, err := numberField(el, i, "quantity")
		if err != nil {
			return nil, err
		}
		items = append(items, model.LineItem{ProductID: pid, Quantity: qty})
	}
	return items, nil
}

func numberField(el gjson.Result, i int, name string) (decimal.Decimal, error) {
	v := lastField(el, name)
	if !v.Exists() {
		return decimal.Decimal{}, &ValidationError{Index: i, Field: name, Reason: "is required"}
	}
	if v.Type != gjson.Number {
		return decimal.Decimal{}, &ValidationError{Index: i, Field: name, Reason: "must be a number"}
	}
	d, err := decimal.NewFromString(v.Raw)
	if err != nil {
		return decimal.Decimal{}, &ValidationError{Index: i, Field: name, Reason: "is out of range"}
	}
	return d, nil
}

// lastField is el.Get(name) except that duplicate keys resolve to the last
// value rather than the first.
func lastField(el gjson.Result, name string) gjson.Result {
	var found gjson.Result
	el.ForEach(func(key, value gjson.Result) bool {
		if key.String() == name {
			found = value
		}
		return true
	})
	return found
}
