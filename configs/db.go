package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/auy1jlll/pizza-vx-sub010/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.MenuCategory{}, &entity.MenuItem{}, &entity.MenuItemGroup{},
		&entity.CustomizationGroup{}, &entity.CustomizationOption{},
		&entity.Topping{},
		&entity.Promotion{},
		&entity.AppSetting{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.OrderItemSelection{}, &entity.OrderItemTopping{},
		&entity.OrderPromotion{},
	)
}
