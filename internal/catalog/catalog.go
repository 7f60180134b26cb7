// Package catalog loads the product catalog into an immutable snapshot.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"specsim/internal/models"
)

// ErrNotFound is returned when a product id is not in the snapshot.
var ErrNotFound = errors.New("product not found")

// Source reads the whole catalog in one go.
type Source interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// Snapshot is a read-only, ordered view of the catalog taken at load time.
type Snapshot struct {
	products []models.Product
	index    map[int]int
}

// NewSnapshot copies products into a snapshot, keeping their order.
// Duplicate product ids are rejected.
func NewSnapshot(products []models.Product) (*Snapshot, error) {
	s := &Snapshot{
		products: make([]models.Product, len(products)),
		index:    make(map[int]int, len(products)),
	}
	copy(s.products, products)

	for i, p := range s.products {
		if _, exists := s.index[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %d at position %d", p.ID, i)
		}
		s.index[p.ID] = i
	}
	return s, nil
}

// Len returns the number of products.
func (s *Snapshot) Len() int {
	return len(s.products)
}

// All returns the products in catalog order.
func (s *Snapshot) All() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// FindByID returns the product with the given id.
func (s *Snapshot) FindByID(id int) (models.Product, error) {
	i, ok := s.index[id]
	if !ok {
		return models.Product{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return s.products[i], nil
}
