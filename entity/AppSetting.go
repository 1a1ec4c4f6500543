package entity

import (
	"gorm.io/gorm"
)

// Externally configured cart parameters (tax rate, delivery fee, minimum
// order amount) keyed by name.
type AppSetting struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Value string `gorm:"not null" json:"value"`
}

const (
	SettingTaxRate      = "tax_rate"
	SettingDeliveryFee  = "delivery_fee"
	SettingMinimumOrder = "minimum_order"
)
