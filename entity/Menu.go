package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Menu is a priced bundle. It references products, it does not own them.
type Menu struct {
	Model
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Products    []string        `gorm:"serializer:json;type:text" json:"products"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}

func (m *Menu) AfterFind(tx *gorm.DB) error {
	if m.Products == nil {
		m.Products = []string{}
	}
	return nil
}
