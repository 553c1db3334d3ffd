package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-gold-catalog/internal/model"
)

func uintPtr(v uint) *uint {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

func testProducts() []model.Product {
	return []model.Product{
		{Name: "Bar 1g 2025", Weight: 1, IsActive: true, CategoryID: uintPtr(1)},
		{Name: "Bar 5g 2025", Weight: 5, IsActive: true, CategoryID: uintPtr(1)},
		{Name: "Bar 1g 2023", Weight: 1, IsActive: true, CategoryID: uintPtr(2)},
		{Name: "Hidden bar", Weight: 1, IsActive: false, CategoryID: uintPtr(1)},
		{Name: "Uncategorized coin", Weight: 2, IsActive: true},
	}
}

func TestFilterProductsAllSentinel(t *testing.T) {
	got := FilterProducts(testProducts(), Filter{})

	assert.Len(t, got, 4)
	for _, p := range got {
		assert.True(t, p.IsActive)
	}
}

func TestFilterProductsInactiveAlwaysExcluded(t *testing.T) {
	// The inactive product stays hidden no matter what the other facets say.
	filters := []Filter{
		{},
		{CategoryID: uintPtr(1)},
		{Weight: floatPtr(1)},
		{CategoryID: uintPtr(1), Weight: floatPtr(1)},
	}
	for _, f := range filters {
		for _, p := range FilterProducts(testProducts(), f) {
			assert.NotEqual(t, "Hidden bar", p.Name)
		}
	}
}

func TestFilterProductsByCategory(t *testing.T) {
	got := FilterProducts(testProducts(), Filter{CategoryID: uintPtr(1)})

	assert.Len(t, got, 2)
	for _, p := range got {
		assert.Equal(t, uint(1), *p.CategoryID)
	}
}

func TestFilterProductsByWeight(t *testing.T) {
	got := FilterProducts(testProducts(), Filter{Weight: floatPtr(1)})

	assert.Len(t, got, 2)
	for _, p := range got {
		assert.Equal(t, float64(1), p.Weight)
	}
}

func TestFilterProductsCategoryExcludesUncategorized(t *testing.T) {
	got := FilterProducts(testProducts(), Filter{CategoryID: uintPtr(3)})
	assert.Empty(t, got)
}

func TestSortCategoriesByName(t *testing.T) {
	categories := []model.GoldCategory{
		{ID: 1, Name: "2023"},
		{ID: 2, Name: "2025"},
		{ID: 3, Name: "2024"},
	}
	SortCategoriesByName(categories)

	assert.Equal(t, "2025", categories[0].Name)
	assert.Equal(t, "2024", categories[1].Name)
	assert.Equal(t, "2023", categories[2].Name)
}

func TestSortCategoriesNumericAware(t *testing.T) {
	// Numeric tie-breaking: "10" outranks "9" even though "9" wins a plain
	// lexicographic comparison.
	categories := []model.GoldCategory{
		{ID: 1, Name: "Edisi 9"},
		{ID: 2, Name: "Edisi 10"},
	}
	SortCategoriesByName(categories)

	assert.Equal(t, "Edisi 10", categories[0].Name)
}

func TestSortProductsNewestFirst(t *testing.T) {
	now := time.Now()
	products := []model.Product{
		{Name: "old", BaseModel: model.BaseModel{CreatedAt: now.Add(-time.Hour)}},
		{Name: "new", BaseModel: model.BaseModel{CreatedAt: now}},
	}
	SortProductsNewestFirst(products)

	assert.Equal(t, "new", products[0].Name)
}
