package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CustomizationOption struct {
	gorm.Model
	GroupID uint               `json:"groupId"`
	Group   CustomizationGroup `json:"-"`

	Name          string          `json:"name"`
	PriceModifier decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"priceModifier"`
	PriceType     string          `gorm:"size:10;not null;default:FLAT" json:"priceType"` // FLAT | PERCENT
	IsDefault     bool            `gorm:"not null;default:false" json:"isDefault"`
	MaxQuantity   int             `gorm:"not null;default:1" json:"maxQuantity"` // >1 = repeatable up to N
	Active        bool            `gorm:"not null;default:true" json:"active"`
	SortOrder     int             `gorm:"not null;default:0" json:"sortOrder"`
}
