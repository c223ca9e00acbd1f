package entity

import (
	"github.com/shopspring/decimal"
)

const DefaultProductQuantity = 1

// DefaultPrice applies to products and menus created without a price.
var DefaultPrice = decimal.NewFromInt(5)

// PriceScale is the number of decimal places every price column keeps.
const PriceScale = 2

// maxPrice is the first value a decimal(10,2) column cannot hold.
var maxPrice = decimal.New(1, 10-PriceScale)

// ValidPrice reports whether p is stored exactly: not negative, no more than
// PriceScale decimal places, within the column range.
func ValidPrice(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThan(maxPrice) && p.Equal(p.Round(PriceScale))
}

type Product struct {
	Model
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Image       string          `json:"image"`
	Quantity    int             `gorm:"not null" json:"quantity"`
}
