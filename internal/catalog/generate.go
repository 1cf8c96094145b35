package catalog

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/pkg/errors"

	"github.com/fairyhunter13/product-catalog-api/internal/config"
	"github.com/fairyhunter13/product-catalog-api/internal/model"
)

// GenerateOptions controls the fake catalog.
type GenerateOptions struct {
	Size         int
	Seed         uint64
	ImageBaseURL string
}

// Generate builds a catalog of opts.Size fake products with ids 0..Size-1.
// The same seed always yields the same catalog.
func Generate(opts GenerateOptions) (*Store, error) {
	if opts.Size < 0 {
		return nil, errors.Errorf("catalog size must be >= 0, got %d", opts.Size)
	}
	f := gofakeit.New(opts.Seed)
	base := strings.TrimRight(opts.ImageBaseURL, "/")
	var seq Sequencer
	products := make([]model.Product, 0, opts.Size)
	for i := 0; i < opts.Size; i++ {
		id := seq.Next()
		p := model.Product{
			ID:            id,
			Name:          f.ProductName(),
			Price:         model.PriceFromFloat(f.Price(5, 1500)),
			Description:   f.ProductDescription(),
			Supplier:      f.Company(),
			Category:      f.ProductCategory(),
			Specification: fmt.Sprintf("%s, %s", f.ProductMaterial(), f.ProductFeature()),
		}
		if base != "" {
			p.Thumbnail = fmt.Sprintf("%s/seed/product-%d/200/200", base, id)
			p.Image = fmt.Sprintf("%s/seed/product-%d/800/600", base, id)
		}
		products = append(products, p)
	}
	return &Store{products: products}, nil
}

// FromConfig builds the catalog selected by cfg.CatalogMode.
func FromConfig(cfg config.Config) (*Store, error) {
	switch cfg.CatalogMode {
	case config.CatalogFixed:
		return Fixed(), nil
	case config.CatalogGenerated:
		st, err := Generate(GenerateOptions{
			Size:         cfg.CatalogSize,
			Seed:         cfg.CatalogSeed,
			ImageBaseURL: cfg.CatalogImageBaseURL,
		})
		if err != nil {
			return nil, errors.Wrap(err, "generate catalog")
		}
		return st, nil
	default:
		return nil, errors.Errorf("unknown catalog mode %q", cfg.CatalogMode)
	}
}
