// Package catalog holds the read-only product catalog served by the API.
package catalog

import (
	"github.com/fairyhunter13/product-catalog-api/internal/model"
)

// Store is an immutable, ordered list of products. It is built once at
// startup and only read afterwards, so it needs no locking.
type Store struct {
	products []model.Product
}

// New copies products into a Store, keeping their order.
func New(products []model.Product) *Store {
	cp := make([]model.Product, len(products))
	copy(cp, products)
	return &Store{products: cp}
}

// All returns every product in catalog order. The slice is a copy.
func (s *Store) All() []model.Product {
	cp := make([]model.Product, len(s.products))
	copy(cp, s.products)
	return cp
}

// Get returns the first product whose id matches.
func (s *Store) Get(id int) (model.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// Len reports the catalog size.
func (s *Store) Len() int {
	return len(s.products)
}
