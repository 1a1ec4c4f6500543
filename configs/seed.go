package configs

import (
	"log"

	"github.com/shopspring/decimal"

	"github.com/auy1jlll/pizza-vx-sub010/entity"
)

// SeedSettings writes the externally configured cart parameters if missing.
func SeedSettings() error {
	db := DB()
	defaults := map[string]string{
		entity.SettingTaxRate:      "8.25",
		entity.SettingDeliveryFee:  "3.99",
		entity.SettingMinimumOrder: "15.00",
	}
	for k, v := range defaults {
		if err := db.Where(entity.AppSetting{Key: k}).
			FirstOrCreate(&entity.AppSetting{Key: k, Value: v}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedCatalog loads a starter menu: categories, customization groups with
// their options, pizza items with toppings, and a couple of promotions.
// Idempotent; keyed on slugs/codes/names.
func SeedCatalog() error {
	db := DB()

	var count int64
	db.Model(&entity.MenuCategory{}).Count(&count)
	if count > 0 {
		log.Println("catalog already seeded, skipping")
		return nil
	}

	pizza := entity.MenuCategory{Name: "Pizza", Slug: "pizza", SortOrder: 1, Active: true}
	sides := entity.MenuCategory{Name: "Sides", Slug: "sides", SortOrder: 2, Active: true}
	drinks := entity.MenuCategory{Name: "Drinks", Slug: "drinks", SortOrder: 3, Active: true}
	for _, c := range []*entity.MenuCategory{&pizza, &sides, &drinks} {
		if err := db.Create(c).Error; err != nil {
			return err
		}
	}

	size := entity.CustomizationGroup{
		Name: "Size", SelectionType: "SINGLE_SELECT", MinSelections: 1, MaxSelections: 1,
		CategoryID: &pizza.ID,
		Options: []entity.CustomizationOption{
			{Name: `Small 10"`, PriceModifier: dec("0"), PriceType: "FLAT", IsDefault: true, MaxQuantity: 1, Active: true, SortOrder: 1},
			{Name: `Medium 12"`, PriceModifier: dec("3.00"), PriceType: "FLAT", MaxQuantity: 1, Active: true, SortOrder: 2},
			{Name: `Large 16"`, PriceModifier: dec("6.00"), PriceType: "FLAT", MaxQuantity: 1, Active: true, SortOrder: 3},
		},
	}
	crust := entity.CustomizationGroup{
		Name: "Crust", SelectionType: "SINGLE_SELECT", MinSelections: 0, MaxSelections: 1,
		CategoryID: &pizza.ID,
		Options: []entity.CustomizationOption{
			{Name: "Hand Tossed", PriceModifier: dec("0"), PriceType: "FLAT", IsDefault: true, MaxQuantity: 1, Active: true, SortOrder: 1},
			{Name: "Thin Crust", PriceModifier: dec("0"), PriceType: "FLAT", MaxQuantity: 1, Active: true, SortOrder: 2},
			{Name: "Stuffed Crust", PriceModifier: dec("10"), PriceType: "PERCENT", MaxQuantity: 1, Active: true, SortOrder: 3},
		},
	}
	// global group, reusable outside pizza
	addons := entity.CustomizationGroup{
		Name: "Add-ons", SelectionType: "MULTI_SELECT", MinSelections: 0, MaxSelections: 3,
		Options: []entity.CustomizationOption{
			{Name: "Ranch Dip", PriceModifier: dec("0.75"), PriceType: "FLAT", MaxQuantity: 3, Active: true, SortOrder: 1},
			{Name: "Garlic Sauce", PriceModifier: dec("0.75"), PriceType: "FLAT", MaxQuantity: 3, Active: true, SortOrder: 2},
			{Name: "Chili Flakes", PriceModifier: dec("0"), PriceType: "FLAT", MaxQuantity: 1, Active: true, SortOrder: 3},
		},
	}
	for _, g := range []*entity.CustomizationGroup{&size, &crust, &addons} {
		if err := db.Create(g).Error; err != nil {
			return err
		}
	}

	items := []struct {
		item     entity.MenuItem
		groups   []entity.CustomizationGroup
		required []bool
	}{
		{
			item:     entity.MenuItem{Name: "Margherita", Description: "Tomato, mozzarella, basil", BasePrice: dec("11.99"), CategoryID: pizza.ID, AllowToppings: true, Active: true, Available: true, SortOrder: 1},
			groups:   []entity.CustomizationGroup{size, crust, addons},
			required: []bool{true, false, false},
		},
		{
			item:     entity.MenuItem{Name: "Pepperoni Classic", Description: "Loaded pepperoni", BasePrice: dec("13.49"), CategoryID: pizza.ID, AllowToppings: true, Active: true, Available: true, SortOrder: 2},
			groups:   []entity.CustomizationGroup{size, crust, addons},
			required: []bool{true, false, false},
		},
		{
			item:     entity.MenuItem{Name: "Garlic Breadsticks", BasePrice: dec("5.49"), CategoryID: sides.ID, Active: true, Available: true, SortOrder: 1},
			groups:   []entity.CustomizationGroup{addons},
			required: []bool{false},
		},
		{
			item: entity.MenuItem{Name: "Soda 2L", BasePrice: dec("2.99"), CategoryID: drinks.ID, Active: true, Available: true, SortOrder: 1},
		},
	}
	for i := range items {
		if err := db.Create(&items[i].item).Error; err != nil {
			return err
		}
		for gi, g := range items[i].groups {
			join := entity.MenuItemGroup{
				MenuItemID:           items[i].item.ID,
				CustomizationGroupID: g.ID,
				IsRequired:           items[i].required[gi],
				SortOrder:            gi + 1,
			}
			if err := db.Create(&join).Error; err != nil {
				return err
			}
		}
	}

	toppings := []entity.Topping{
		{Name: "Pepperoni", Price: dec("2.00"), Active: true, SortOrder: 1},
		{Name: "Mushrooms", Price: dec("1.50"), Active: true, SortOrder: 2},
		{Name: "Italian Sausage", Price: dec("2.25"), Active: true, SortOrder: 3},
		{Name: "Red Onions", Price: dec("1.00"), Active: true, SortOrder: 4},
		{Name: "Extra Mozzarella", Price: dec("1.75"), Active: true, SortOrder: 5},
	}
	for i := range toppings {
		if err := db.Create(&toppings[i]).Error; err != nil {
			return err
		}
	}

	promos := []entity.Promotion{
		{
			Name: "10% Off Everything", Code: "SAVE10",
			DiscountType: "PERCENT", Value: dec("10"),
			Priority: 10, Active: true,
		},
		{
			Name: "Second Pizza Half Off", Code: "PIZZABOGO",
			DiscountType: "BUY_ONE_GET_SECOND_HALF_OFF",
			MinItems: 2, Priority: 5, Active: true,
			Categories: []entity.MenuCategory{pizza},
		},
	}
	for i := range promos {
		if err := db.Create(&promos[i]).Error; err != nil {
			return err
		}
	}

	log.Println("catalog seeded")
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
