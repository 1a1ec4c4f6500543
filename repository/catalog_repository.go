package repository

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/auy1jlll/pizza-vx-sub010/entity"
	"github.com/auy1jlll/pizza-vx-sub010/pricing"
)

var ErrItemNotFound = errors.New("menu item not found")

type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// ---------------- Browse ----------------

func (r *CatalogRepository) ListCategories() ([]entity.MenuCategory, error) {
	var cats []entity.MenuCategory
	err := r.DB.Where("active = ?", true).Order("sort_order, id").Find(&cats).Error
	return cats, err
}

func (r *CatalogRepository) FindCategoryBySlug(slug string) (*entity.MenuCategory, error) {
	var cat entity.MenuCategory
	if err := r.DB.Where("slug = ? AND active = ?", slug, true).First(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CatalogRepository) ListItemsByCategory(categoryID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("category_id = ? AND active = ?", categoryID, true).
		Order("sort_order, id").Find(&items).Error
	return items, err
}

func (r *CatalogRepository) GetItemDetail(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.
		Preload("Groups", func(db *gorm.DB) *gorm.DB { return db.Order("customization_groups.id") }).
		Preload("Groups.Options", func(db *gorm.DB) *gorm.DB {
			return db.Where("active = ?", true).Order("sort_order, id")
		}).
		Where("active = ?", true).
		First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ---------------- Engine snapshot ----------------

// GetItemSnapshot resolves one menu item into the engine's borrowed catalog
// snapshot: groups merged with the per-item join overrides, active options,
// and the topping list when the item accepts toppings.
func (r *CatalogRepository) GetItemSnapshot(id uint) (*pricing.ItemSnapshot, error) {
	var item entity.MenuItem
	if err := r.DB.Where("active = ? AND available = ?", true, true).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("%w: %v", pricing.ErrCatalogUnavailable, err)
	}

	var joins []entity.MenuItemGroup
	if err := r.DB.Where("menu_item_id = ?", item.ID).Order("sort_order").Find(&joins).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", pricing.ErrCatalogUnavailable, err)
	}

	groups := make([]pricing.GroupSnapshot, 0, len(joins))
	for _, j := range joins {
		var g entity.CustomizationGroup
		if err := r.DB.Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order, id")
		}).First(&g, j.CustomizationGroupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue // dangling join row, skip
			}
			return nil, fmt.Errorf("%w: %v", pricing.ErrCatalogUnavailable, err)
		}

		opts := make([]pricing.OptionSnapshot, 0, len(g.Options))
		for _, o := range g.Options {
			opts = append(opts, pricing.OptionSnapshot{
				ID:            idStr(o.ID),
				Name:          o.Name,
				PriceModifier: o.PriceModifier,
				PriceType:     pricing.PriceType(o.PriceType),
				IsDefault:     o.IsDefault,
				MaxQuantity:   o.MaxQuantity,
				Active:        o.Active,
			})
		}
		groups = append(groups, pricing.GroupSnapshot{
			ID:            idStr(g.ID),
			Name:          g.Name,
			SelectionType: pricing.SelectionType(g.SelectionType),
			MinSelections: g.MinSelections,
			MaxSelections: g.MaxSelections,
			IsRequired:    j.IsRequired,
			Options:       opts,
		})
	}

	snap := &pricing.ItemSnapshot{
		ID:         idStr(item.ID),
		CategoryID: idStr(item.CategoryID),
		Name:       item.Name,
		BasePrice:  item.BasePrice,
		Groups:     groups,
	}

	if item.AllowToppings {
		var tops []entity.Topping
		if err := r.DB.Where("active = ?", true).Order("sort_order, id").Find(&tops).Error; err != nil {
			return nil, fmt.Errorf("%w: %v", pricing.ErrCatalogUnavailable, err)
		}
		for _, t := range tops {
			snap.Toppings = append(snap.Toppings, pricing.ToppingSnapshot{
				ID:     idStr(t.ID),
				Name:   t.Name,
				Price:  t.Price,
				Active: t.Active,
			})
		}
	}
	return snap, nil
}

// GetActivePromotions maps active promotion rows whose date window could
// contain now into engine rules. Window/usage checks still run inside the
// engine so arbitration stays in one place.
func (r *CatalogRepository) GetActivePromotions(now time.Time) ([]pricing.PromotionRule, error) {
	var promos []entity.Promotion
	err := r.DB.
		Preload("Categories").
		Preload("Items").
		Where("active = ?", true).
		Where("start_at IS NULL OR start_at <= ?", now).
		Where("end_at IS NULL OR end_at >= ?", now).
		Find(&promos).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pricing.ErrCatalogUnavailable, err)
	}

	rules := make([]pricing.PromotionRule, 0, len(promos))
	for _, p := range promos {
		rule := pricing.PromotionRule{
			ID:           idStr(p.ID),
			Name:         p.Name,
			DiscountType: pricing.DiscountType(p.DiscountType),
			Value:        p.Value,
			MinOrder:     p.MinOrder,
			MinItems:     p.MinItems,
			StartAt:      p.StartAt,
			EndAt:        p.EndAt,
			UsageLimit:   p.UsageLimit,
			UsageCount:   p.UsageCount,
			Priority:     p.Priority,
			Stackable:    p.Stackable,
		}
		for _, c := range p.Categories {
			rule.CategoryIDs = append(rule.CategoryIDs, idStr(c.ID))
		}
		for _, it := range p.Items {
			rule.ItemIDs = append(rule.ItemIDs, idStr(it.ID))
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// ---------------- App settings ----------------

func (r *CatalogRepository) GetAppSetting(key string) (string, error) {
	var row entity.AppSetting
	if err := r.DB.Where("key = ?", key).First(&row).Error; err != nil {
		return "", fmt.Errorf("%w: setting %q: %v", pricing.ErrCatalogUnavailable, key, err)
	}
	return row.Value, nil
}

// GetCartConfig reads tax rate, delivery fee and minimum order amount.
func (r *CatalogRepository) GetCartConfig() (pricing.CartConfig, error) {
	var cfg pricing.CartConfig
	var err error
	if cfg.TaxRate, err = r.getDecimalSetting(entity.SettingTaxRate); err != nil {
		return cfg, err
	}
	if cfg.DeliveryFee, err = r.getDecimalSetting(entity.SettingDeliveryFee); err != nil {
		return cfg, err
	}
	if cfg.MinimumOrder, err = r.getDecimalSetting(entity.SettingMinimumOrder); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (r *CatalogRepository) getDecimalSetting(key string) (decimal.Decimal, error) {
	raw, err := r.GetAppSetting(key)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: setting %q is not a number: %v", pricing.ErrCatalogUnavailable, key, err)
	}
	return d, nil
}

func idStr(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseID converts an engine-facing opaque id back to a database key.
func ParseID(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(v), nil
}
