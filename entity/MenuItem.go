package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"basePrice"`
	SortOrder   int             `gorm:"not null;default:0" json:"sortOrder"`
	Active      bool            `gorm:"not null;default:true" json:"active"`
	Available   bool            `gorm:"not null;default:true" json:"available"`

	// pizzas accept topping selections, plain menu items do not
	AllowToppings bool `gorm:"not null;default:false" json:"allowToppings"`

	CategoryID uint         `json:"categoryId"`
	Category   MenuCategory `json:"-"` // preload only on detail

	// many2many so the same group is reusable across items; the join row
	// carries the per-item isRequired/sortOrder overrides
	Groups []CustomizationGroup `gorm:"many2many:menu_item_groups;" json:"-"`

	OrderItems []OrderItem `json:"-"`
}
