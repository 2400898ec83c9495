package port

import "github.com/AdwaitMishr/vitmart/internal/domain"

// Catalog is the read-only product fixture source. A missing product is
// a not-found result, not an error.
type Catalog interface {
	Products() []domain.Product
	ProductByID(id string) (domain.Product, bool)
	Reviews() []domain.Review
}
