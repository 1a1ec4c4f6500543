package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Snapshot of one topping pick. Distinct placements of the same topping are
// separate rows.
type OrderItemTopping struct {
	gorm.Model
	OrderItemID uint      `json:"orderItemId"`
	OrderItem   OrderItem `json:"-"`

	ToppingID uint    `json:"toppingId"`
	Topping   Topping `json:"-"`

	Placement  string          `gorm:"size:20;not null" json:"placement"` // WHOLE | LEFT_HALF | RIGHT_HALF
	Intensity  string          `gorm:"size:20;not null" json:"intensity"` // LIGHT | REGULAR | EXTRA
	Quantity   int             `json:"quantity"`
	PriceDelta decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"priceDelta"`
}
