package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/auy1jlll/pizza-vx-sub010/entity"
	"github.com/auy1jlll/pizza-vx-sub010/pricing"
)

type PromotionService struct {
	DB *gorm.DB
}

func NewPromotionService(db *gorm.DB) *PromotionService {
	return &PromotionService{DB: db}
}

// knownDiscountTypes gates rule creation so the engine never meets a
// discount kind it cannot evaluate.
var knownDiscountTypes = map[string]bool{
	string(pricing.DiscountPercent):       true,
	string(pricing.DiscountFlat):          true,
	string(pricing.DiscountSecondHalfOff): true,
}

func (s *PromotionService) Create(promo *entity.Promotion) error {
	if !knownDiscountTypes[promo.DiscountType] {
		return fmt.Errorf("%w: %q", pricing.ErrUnknownDiscountType, promo.DiscountType)
	}
	return s.DB.Create(promo).Error
}

func (s *PromotionService) GetAll() ([]entity.Promotion, error) {
	var promos []entity.Promotion
	err := s.DB.Preload("Categories").Preload("Items").Find(&promos).Error
	return promos, err
}

func (s *PromotionService) Update(id uint, promo *entity.Promotion) error {
	if promo.DiscountType != "" && !knownDiscountTypes[promo.DiscountType] {
		return fmt.Errorf("%w: %q", pricing.ErrUnknownDiscountType, promo.DiscountType)
	}
	var existing entity.Promotion
	if err := s.DB.First(&existing, id).Error; err != nil {
		return err
	}
	return s.DB.Model(&existing).Updates(promo).Error
}

// Delete soft-deletes the rule; order_promotions rows keep their history.
func (s *PromotionService) Delete(id uint) error {
	return s.DB.Delete(&entity.Promotion{}, id).Error
}
