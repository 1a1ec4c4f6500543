package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/auy1jlll/pizza-vx-sub010/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) CreateOrderPromotion(tx *gorm.DB, op *entity.OrderPromotion) error {
	return tx.Create(op).Error
}

// IncrementPromotionUsage burns one use of an applied rule, guarded so a
// concurrent checkout cannot push it past its limit.
func (r *OrderRepository) IncrementPromotionUsage(tx *gorm.DB, promoID uint) error {
	return tx.Model(&entity.Promotion{}).
		Where("id = ?", promoID).
		Where("usage_limit = 0 OR usage_count < usage_limit").
		Update("usage_count", gorm.Expr("usage_count + 1")).Error
}

func (r *OrderRepository) GetOrderByNumber(number string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Items").
		Preload("Items.Selections").
		Preload("Items.Toppings").
		Preload("Promotions").
		Where("order_number = ?", number).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID          uint      `json:"id"`
	OrderNumber string    `json:"orderNumber"`
	OrderType   string    `json:"orderType"`
	Total       string    `json:"total"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrders(limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, order_number, order_type, total, created_at").
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}
