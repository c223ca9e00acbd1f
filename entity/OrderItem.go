package entity

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ItemKind string

const (
	ItemKindMenu    ItemKind = "menu"
	ItemKindProduct ItemKind = "product"
)

var ErrOrderItemImmutable = errors.New("order items cannot be modified")

// OrderItem is a priced line of an order. Price is a snapshot taken when the order
// is placed; catalog price changes never reach it.
type OrderItem struct {
	Model
	Type  ItemKind        `gorm:"size:16;not null" json:"type"`
	Item  string          `gorm:"size:64;index" json:"item"`
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}

func (OrderItem) TableName() string { return "orders_items" }

func (oi *OrderItem) BeforeUpdate(tx *gorm.DB) error {
	return ErrOrderItemImmutable
}
