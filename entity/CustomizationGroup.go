package entity

import (
	"gorm.io/gorm"
)

type CustomizationGroup struct {
	gorm.Model
	Name          string `json:"name"`
	SelectionType string `gorm:"size:20;not null;default:SINGLE_SELECT" json:"selectionType"`
	MinSelections int    `gorm:"not null;default:0" json:"minSelections"`
	MaxSelections int    `gorm:"not null;default:0" json:"maxSelections"` // 0 = unbounded

	// null = global/reusable group, otherwise scoped to one category
	CategoryID *uint         `json:"categoryId,omitempty"`
	Category   *MenuCategory `json:"-"`

	Options []CustomizationOption `gorm:"foreignKey:GroupID" json:"options"`

	Items []MenuItem `gorm:"many2many:menu_item_groups;" json:"-"`
}
