package catalog

import "github.com/fairyhunter13/product-catalog-api/internal/model"

// Fixed returns the demo catalog of five products with ids 1 through 5.
func Fixed() *Store {
	return New([]model.Product{
		{ID: 1, Name: "Smartphone", Price: model.MustPrice("499.99")},
		{ID: 2, Name: "Laptop", Price: model.MustPrice("999.99")},
		{ID: 3, Name: "Tablette", Price: model.MustPrice("299.99")},
		{ID: 4, Name: "Écouteurs sans fil", Price: model.MustPrice("79.99")},
		{ID: 5, Name: "Montre connectée", Price: model.MustPrice("199.99")},
	})
}
