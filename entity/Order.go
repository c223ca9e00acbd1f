package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	Model
	Status OrderStatus `gorm:"size:16;index;not null" json:"status"`

	// OrderItem ids, fixed when the order is created
	Items []string `gorm:"serializer:json;type:text" json:"items"`

	UserID string `gorm:"size:24;index" json:"userId,omitempty"`
}

func (o *Order) AfterFind(tx *gorm.DB) error {
	if o.Items == nil {
		o.Items = []string{}
	}
	return nil
}
