package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

func init() {
	// prices go over the wire as plain JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// Model stands in for gorm.Model: ids are 24-char hex object ids so that clients
// keep the same identifier format whatever SQL store sits underneath.
type Model struct {
	ID        string    `gorm:"primaryKey;size:24" json:"_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *Model) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = NewID()
	}
	return nil
}

// NewID returns a fresh object id in hex form.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// IsValidID reports whether id is a well-formed object id.
func IsValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}
