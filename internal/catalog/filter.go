package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"go-gold-catalog/internal/model"
)

// Filter narrows a product list for display. A nil field is the "all"
// sentinel and passes everything through.
type Filter struct {
	CategoryID *uint
	Weight     *float64
}

// FilterProducts applies the filter to an in-memory list. Inactive products
// are excluded unconditionally; that is not a user-toggleable facet. The
// function is pure and triggers no I/O.
func FilterProducts(products []model.Product, f Filter) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		if f.Weight != nil && p.Weight != *f.Weight {
			continue
		}
		if f.CategoryID != nil {
			if p.CategoryID == nil || *p.CategoryID != *f.CategoryID {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// SortCategoriesByName orders categories for selectors: locale-aware string
// comparison with numeric tie-breaking, descending, so a category named
// "2025" sorts before "2023". This is deliberately not a numeric field sort.
func SortCategoriesByName(categories []model.GoldCategory) {
	c := collate.New(language.Indonesian, collate.Numeric)
	sort.SliceStable(categories, func(i, j int) bool {
		return c.CompareString(categories[i].Name, categories[j].Name) > 0
	})
}

// SortProductsNewestFirst orders the catalog so fresh items lead.
func SortProductsNewestFirst(products []model.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
}
