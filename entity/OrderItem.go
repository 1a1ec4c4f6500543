package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload only when the name is needed

	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Note      string          `json:"note"`

	Selections []OrderItemSelection `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"selections"`
	Toppings   []OrderItemTopping   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"toppings"`
}
