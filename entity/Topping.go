package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Topping price is the WHOLE-placement, REGULAR-intensity unit price;
// placement/intensity multipliers are applied by the pricing engine.
type Topping struct {
	gorm.Model
	Name      string          `json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Active    bool            `gorm:"not null;default:true" json:"active"`
	SortOrder int             `gorm:"not null;default:0" json:"sortOrder"`
}
