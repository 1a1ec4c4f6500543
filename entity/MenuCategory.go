package entity

import (
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	Name      string `json:"name"`
	Slug      string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	SortOrder int    `gorm:"not null;default:0" json:"sortOrder"`
	Active    bool   `gorm:"not null;default:true" json:"active"`

	Items []MenuItem `gorm:"foreignKey:CategoryID" json:"-"`

	// category-scoped groups; global groups have CategoryID = null
	Groups []CustomizationGroup `gorm:"foreignKey:CategoryID" json:"-"`
}
