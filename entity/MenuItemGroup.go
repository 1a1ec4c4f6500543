package entity

// Join table MenuItem <-> CustomizationGroup. The same group can be required
// for one item and optional for another.
type MenuItemGroup struct {
	MenuItemID           uint `gorm:"primaryKey" json:"menuItemId"`
	CustomizationGroupID uint `gorm:"primaryKey" json:"customizationGroupId"`
	IsRequired           bool `gorm:"not null;default:false" json:"isRequired"`
	SortOrder            int  `gorm:"not null;default:0" json:"sortOrder"`
}
