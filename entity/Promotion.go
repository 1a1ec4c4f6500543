package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Promotion struct {
	gorm.Model
	Name         string          `json:"name"`
	Code         string          `gorm:"size:50;uniqueIndex;not null" json:"code"`
	DiscountType string          `gorm:"size:40;not null" json:"discountType"` // PERCENT | FLAT | BUY_ONE_GET_SECOND_HALF_OFF
	Value        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"value"`
	MinOrder     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"minOrder"`
	MinItems     int             `gorm:"not null;default:0" json:"minItems"`
	StartAt      *time.Time      `json:"startAt,omitempty"`
	EndAt        *time.Time      `json:"endAt,omitempty"`
	UsageLimit   int             `gorm:"not null;default:0" json:"usageLimit"` // 0 = unlimited
	UsageCount   int             `gorm:"not null;default:0" json:"usageCount"`
	Priority     int             `gorm:"not null;default:100" json:"priority"` // lower wins ties
	Stackable    bool            `gorm:"not null;default:false" json:"stackable"`
	Active       bool            `gorm:"not null;default:true" json:"active"`

	// empty = applies to the whole cart
	Categories []MenuCategory `gorm:"many2many:promotion_categories;" json:"-"`
	Items      []MenuItem     `gorm:"many2many:promotion_items;" json:"-"`
}
