package model

import (
	"errors"
	"time"
)

// PriceTable selects between the two parallel master price tables.
type PriceTable string

const (
	TableSell    PriceTable = "sell"
	TableBuyback PriceTable = "buyback"
)

var ErrUnknownPriceTable = errors.New("unknown price table")

// TableName maps the logical table to its physical relation.
func (t PriceTable) TableName() (string, error) {
	switch t {
	case TableSell:
		return "gold_sell_prices", nil
	case TableBuyback:
		return "gold_buyback_prices", nil
	}
	return "", ErrUnknownPriceTable
}

// ParsePriceTable validates a table name coming from a route parameter.
func ParsePriceTable(s string) (PriceTable, error) {
	switch PriceTable(s) {
	case TableSell:
		return TableSell, nil
	case TableBuyback:
		return TableBuyback, nil
	}
	return "", ErrUnknownPriceTable
}

// WeightPrice is one master price row: price per gram for a given category
// and weight. At most one row exists per (category_id, weight) per table.
// Price is whole Rupiah, no minor units.
type WeightPrice struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CategoryID uint      `gorm:"not null;index" json:"category_id"`
	Weight     float64   `gorm:"not null" json:"weight"`
	Price      int64     `gorm:"not null" json:"price"`
	UpdatedAt  time.Time `json:"updated_at"`
}
