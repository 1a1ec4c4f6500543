package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderNumber string          `gorm:"size:36;uniqueIndex;not null" json:"orderNumber"`
	OrderType   string          `gorm:"size:20;not null" json:"orderType"` // DELIVERY | PICKUP
	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Discount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"discount"`
	Tax         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"tax"`
	DeliveryFee decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"deliveryFee"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Address     string          `json:"address"`

	Items      []OrderItem      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	Promotions []OrderPromotion `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"promotions"`
}
