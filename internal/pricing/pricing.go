package pricing

import (
	"math"
	"strconv"
	"strings"

	"go-gold-catalog/internal/model"
)

// SupportedWeights is the fixed gramination set used across price tables,
// product filters and the price editor.
var SupportedWeights = []float64{0.5, 1, 2, 3, 5, 10, 25, 50, 100}

// DriftTolerance absorbs rounding noise when comparing a product's cached
// price against the computed live price, in whole Rupiah.
const DriftTolerance int64 = 100

// IsSupportedWeight reports whether w is part of the fixed enumeration.
func IsSupportedWeight(w float64) bool {
	for _, s := range SupportedWeights {
		if s == w {
			return true
		}
	}
	return false
}

// Key addresses one master price row. Lookup is exact; there is no
// interpolation between adjacent weights.
type Key struct {
	CategoryID uint
	Weight     float64
}

// MasterTable is an in-memory snapshot of the sell price table:
// (category, weight) -> price per gram.
type MasterTable map[Key]int64

// BuildMasterTable indexes master price rows for resolution. Later duplicates
// win, which cannot happen when the rows come from the store (the replace
// flow keeps one row per key).
func BuildMasterTable(rows []model.WeightPrice) MasterTable {
	table := make(MasterTable, len(rows))
	for _, row := range rows {
		table[Key{CategoryID: row.CategoryID, Weight: row.Weight}] = row.Price
	}
	return table
}

// Source tags how a live price was obtained.
type Source string

const (
	// SourceMaster means the price was computed from a master table row.
	SourceMaster Source = "master"
	// SourceFallback means no master row matched and the cached product
	// price was returned unchanged. This is a degrade-gracefully policy,
	// not an error.
	SourceFallback Source = "fallback"
)

// Resolution is the authoritative pricing verdict for one product.
type Resolution struct {
	Source       Source `json:"source"`
	LivePrice    int64  `json:"live_price"`
	PricePerGram int64  `json:"price_per_gram"`
	// Delta is live price minus the stored product price.
	Delta     int64 `json:"delta"`
	OutOfSync bool  `json:"out_of_sync"`
}

// Resolve computes the live price for a product against a master table
// snapshot. It is a pure function of its two inputs.
func Resolve(p model.Product, table MasterTable) Resolution {
	if p.CategoryID != nil {
		if perGram, ok := table[Key{CategoryID: *p.CategoryID, Weight: p.Weight}]; ok {
			live := int64(math.Round(float64(perGram) * p.Weight))
			delta := live - p.Price
			return Resolution{
				Source:       SourceMaster,
				LivePrice:    live,
				PricePerGram: perGram,
				Delta:        delta,
				OutOfSync:    abs(delta) > DriftTolerance,
			}
		}
	}

	// No master row: fall back to the cached price, never flagged.
	return Resolution{
		Source:       SourceFallback,
		LivePrice:    p.Price,
		PricePerGram: perGramOf(p.Price, p.Weight),
		Delta:        0,
		OutOfSync:    false,
	}
}

// perGramOf guards against division by zero for display values.
func perGramOf(price int64, weight float64) int64 {
	if weight <= 0 {
		return 0
	}
	return int64(math.Round(float64(price) / weight))
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// ParseAmount converts thousands-separated price input ("1.200.000",
// "1,200,000", "Rp 950.000") to whole Rupiah by stripping every non-digit
// character. Empty or digit-free input parses to 0, which the price editor
// treats as "unset".
func ParseAmount(s string) int64 {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
