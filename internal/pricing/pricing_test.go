package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-gold-catalog/internal/model"
)

func categoryID(id uint) *uint {
	return &id
}

func TestResolveFromMasterRow(t *testing.T) {
	table := BuildMasterTable([]model.WeightPrice{
		{CategoryID: 1, Weight: 1, Price: 1_200_000},
		{CategoryID: 1, Weight: 5, Price: 1_190_000},
	})

	product := model.Product{Weight: 5, Price: 5_950_000, CategoryID: categoryID(1)}
	res := Resolve(product, table)

	assert.Equal(t, SourceMaster, res.Source)
	assert.Equal(t, int64(5_950_000), res.LivePrice)
	assert.Equal(t, int64(1_190_000), res.PricePerGram)
	assert.False(t, res.OutOfSync)
}

func TestResolveDriftedProduct(t *testing.T) {
	// Master sell table for category "2025": 1g at 1.2M. The product still
	// carries the old 1.0M snapshot.
	table := BuildMasterTable([]model.WeightPrice{
		{CategoryID: 1, Weight: 1, Price: 1_200_000},
	})

	product := model.Product{Weight: 1, Price: 1_000_000, CategoryID: categoryID(1)}
	res := Resolve(product, table)

	assert.Equal(t, SourceMaster, res.Source)
	assert.Equal(t, int64(1_200_000), res.LivePrice)
	assert.Equal(t, int64(200_000), res.Delta)
	assert.True(t, res.OutOfSync)

	// After syncing the stored price the flag clears.
	product.Price = res.LivePrice
	assert.False(t, Resolve(product, table).OutOfSync)
}

func TestResolveFallbackWhenNoMasterRow(t *testing.T) {
	// Category "2024" has no row for weight 3: the cached price is returned
	// unchanged and the product is never flagged.
	table := BuildMasterTable([]model.WeightPrice{
		{CategoryID: 2, Weight: 1, Price: 1_100_000},
	})

	product := model.Product{Weight: 3, Price: 500_000, CategoryID: categoryID(2)}
	res := Resolve(product, table)

	assert.Equal(t, SourceFallback, res.Source)
	assert.Equal(t, int64(500_000), res.LivePrice)
	assert.False(t, res.OutOfSync)
}

func TestResolveFallbackWithoutCategory(t *testing.T) {
	table := BuildMasterTable([]model.WeightPrice{
		{CategoryID: 1, Weight: 1, Price: 1_200_000},
	})

	product := model.Product{Weight: 1, Price: 900_000}
	res := Resolve(product, table)

	assert.Equal(t, SourceFallback, res.Source)
	assert.Equal(t, int64(900_000), res.LivePrice)
}

func TestResolveIsPure(t *testing.T) {
	table := BuildMasterTable([]model.WeightPrice{
		{CategoryID: 1, Weight: 2, Price: 1_150_000},
	})
	product := model.Product{Weight: 2, Price: 2_000_000, CategoryID: categoryID(1)}

	assert.Equal(t, Resolve(product, table), Resolve(product, table))
}

func TestDriftTolerance(t *testing.T) {
	table := BuildMasterTable([]model.WeightPrice{
		{CategoryID: 1, Weight: 1, Price: 1_000_000},
	})

	// Within tolerance: absorbed as rounding noise.
	near := model.Product{Weight: 1, Price: 1_000_001, CategoryID: categoryID(1)}
	assert.False(t, Resolve(near, table).OutOfSync)

	// Far outside tolerance: always flagged.
	far := model.Product{Weight: 1, Price: 1_010_000, CategoryID: categoryID(1)}
	assert.True(t, Resolve(far, table).OutOfSync)
}

func TestPricePerGramGuardsZeroWeight(t *testing.T) {
	product := model.Product{Weight: 0, Price: 500_000}
	res := Resolve(product, MasterTable{})

	assert.Equal(t, int64(0), res.PricePerGram)
	assert.Equal(t, int64(500_000), res.LivePrice)
}

func TestIsSupportedWeight(t *testing.T) {
	assert.True(t, IsSupportedWeight(0.5))
	assert.True(t, IsSupportedWeight(100))
	assert.False(t, IsSupportedWeight(4.25))
	assert.False(t, IsSupportedWeight(0))
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, int64(1_200_000), ParseAmount("1.200.000"))
	assert.Equal(t, int64(1_200_000), ParseAmount("1,200,000"))
	assert.Equal(t, int64(950_000), ParseAmount("Rp 950.000"))
	assert.Equal(t, int64(0), ParseAmount(""))
	assert.Equal(t, int64(0), ParseAmount("abc"))
	assert.Equal(t, int64(500), ParseAmount("500"))
}
