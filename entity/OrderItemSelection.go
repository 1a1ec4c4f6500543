package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Snapshot of one option pick at the price it was charged.
type OrderItemSelection struct {
	gorm.Model
	OrderItemID uint      `json:"orderItemId"`
	OrderItem   OrderItem `json:"-"` // no serialization back, avoids loops

	OptionID uint                `json:"optionId"`
	Option   CustomizationOption `json:"-"`

	Quantity   int             `json:"quantity"`
	PriceDelta decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"priceDelta"`
}
