package catalog

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/AdwaitMishr/vitmart/internal/domain"
	"github.com/AdwaitMishr/vitmart/internal/port"
)

//go:embed data/products.json data/reviews.json
var fixtures embed.FS

// Catalog serves the fixed product and review records. It is read-only:
// nothing in the application mutates it after Load.
type Catalog struct {
	products []domain.Product
	byID     map[string]domain.Product
	reviews  []domain.Review
}

func Load() (*Catalog, error) {
	var products []domain.Product
	if err := loadJSON("data/products.json", &products); err != nil {
		return nil, fmt.Errorf("loadJSON products: %w", err)
	}

	var reviews []domain.Review
	if err := loadJSON("data/reviews.json", &reviews); err != nil {
		return nil, fmt.Errorf("loadJSON reviews: %w", err)
	}

	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	return &Catalog{
		products: products,
		byID:     byID,
		reviews:  reviews,
	}, nil
}

func loadJSON(name string, v any) error {
	data, err := fixtures.ReadFile(name)
	if err != nil {
		return fmt.Errorf("fixtures.ReadFile: %w", err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	return nil
}

func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ProductByID reports ok=false for an unknown id; callers surface that
// as a not-found state rather than an error.
func (c *Catalog) ProductByID(id string) (domain.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) Reviews() []domain.Review {
	out := make([]domain.Review, len(c.reviews))
	copy(out, c.reviews)
	return out
}

var _ port.Catalog = (*Catalog)(nil)
