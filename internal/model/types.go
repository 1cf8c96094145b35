// Package model defines domain types used by the service.
package model

import "github.com/shopspring/decimal"

// Product is one catalog entry.
type Product struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Price         Price  `json:"price"`
	Description   string `json:"description,omitempty"`
	Supplier      string `json:"supplier,omitempty"`
	Category      string `json:"category,omitempty"`
	Specification string `json:"specification,omitempty"`
	Thumbnail     string `json:"thumbnail,omitempty"`
	Image         string `json:"image,omitempty"`
}

// LineItem is one entry of a checkout request. Fields keep the exact JSON
// number the client sent, fractional or not.
type LineItem struct {
	ProductID decimal.Decimal `json:"productId"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// Message is the JSON body of every non-collection response.
type Message struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Price is a decimal amount encoded as a bare JSON number.
type Price struct {
	decimal.Decimal
}

// NewPrice parses s, e.g. "499.99".
func NewPrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, err
	}
	return Price{d}, nil
}

// MustPrice is NewPrice for literals known to be valid.
func MustPrice(s string) Price {
	p, err := NewPrice(s)
	if err != nil {
		panic(err)
	}
	return p
}

// PriceFromFloat rounds f to cents.
func PriceFromFloat(f float64) Price {
	return Price{decimal.NewFromFloat(f).Round(2)}
}

// MarshalJSON writes the price unquoted.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.Decimal.String()), nil
}
