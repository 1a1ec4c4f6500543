package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Which promotion rule(s) were applied to an order and how much each took
// off, for audit.
type OrderPromotion struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	PromotionID uint      `json:"promotionId"`
	Promotion   Promotion `json:"-"`

	Amount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
}
