// Package models contains the data structures used across the application.
package models

import "fmt"

// Product is a single catalog record. Values are read-only once loaded.
//
// Overview, Specification, MetaKeyword and MetaDescription hold whatever the
// catalog decoded: usually an HTML string, sometimes a bare number.
type Product struct {
	ID              int     `json:"product_id"`
	FullName        string  `json:"full_product_name"`
	ShortName       string  `json:"short_product_name"`
	Overview        any     `json:"overview"`
	Specification   any     `json:"specification"`
	MetaKeyword     any     `json:"meta_keyword"`
	MetaDescription any     `json:"meta_description"`
	Price           float64 `json:"retail_price"`
	Related         []int   `json:"related_products"`
	Curated         []int   `json:"curated_related_products,omitempty"`
}

// Field returns the raw value stored under a catalog key.
func (p Product) Field(key string) (any, error) {
	switch key {
	case "id":
		return p.ID, nil
	case "full_name":
		return p.FullName, nil
	case "short_name":
		return p.ShortName, nil
	case "overview":
		return p.Overview, nil
	case "specification":
		return p.Specification, nil
	case "meta_keyword":
		return p.MetaKeyword, nil
	case "meta_description":
		return p.MetaDescription, nil
	case "price":
		return p.Price, nil
	case "related":
		return p.Related, nil
	}
	return nil, fmt.Errorf("unknown product field %q", key)
}

// Baseline returns the manually curated related items, falling back to the
// catalog's related products when no curated list was supplied.
func (p Product) Baseline() []int {
	if len(p.Curated) > 0 {
		return p.Curated
	}
	return p.Related
}

// CorpusEntry pairs a product with its normalized text.
type CorpusEntry struct {
	ProductID int    `json:"product_id"`
	Text      string `json:"text"`
}

// Neighbor is one ranked similar product.
type Neighbor struct {
	Score     float64 `json:"score"`
	ProductID int     `json:"product_id"`
}

// NeighborList holds a product's most similar products, best first.
type NeighborList []Neighbor
