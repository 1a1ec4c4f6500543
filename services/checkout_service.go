package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/auy1jlll/pizza-vx-sub010/entity"
	"github.com/auy1jlll/pizza-vx-sub010/pricing"
	"github.com/auy1jlll/pizza-vx-sub010/repository"
)

var ErrEmptyOrder = errors.New("order has no items")

type CheckoutService struct {
	DB        *gorm.DB
	Catalog   *repository.CatalogRepository
	Orders    *repository.OrderRepository
	Tolerance decimal.Decimal

	// injectable clock for promotion window tests
	Now func() time.Time
}

func NewCheckoutService(db *gorm.DB, catalog *repository.CatalogRepository, orders *repository.OrderRepository) *CheckoutService {
	return &CheckoutService{
		DB:        db,
		Catalog:   catalog,
		Orders:    orders,
		Tolerance: pricing.DefaultTolerance,
		Now:       time.Now,
	}
}

// ----- DTOs from Controller -----

type LineItemIn struct {
	ItemID     string                   `json:"itemId" binding:"required"`
	Qty        int                      `json:"qty" binding:"min=1"`
	Note       string                   `json:"note"`
	Selections []pricing.SelectionInput `json:"selections"`
	Toppings   []pricing.ToppingInput   `json:"toppings"`
}

type QuoteReq struct {
	OrderType string       `json:"orderType" binding:"required,oneof=DELIVERY PICKUP"`
	Items     []LineItemIn `json:"items" binding:"required"`
}

type CheckoutReq struct {
	QuoteReq
	ClientTotal decimal.Decimal `json:"clientTotal"`
	Address     string          `json:"address"`
}

type CheckoutRes struct {
	OrderNumber string              `json:"orderNumber"`
	Cart        *pricing.PricedCart `json:"cart"`
}

// Quote validates and prices the whole request against a fresh catalog
// snapshot without persisting anything. Validation violations from every
// line are collected into a single batch.
func (s *CheckoutService) Quote(req *QuoteReq) (*pricing.PricedCart, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	now := s.Now()

	var allErrs pricing.ValidationErrors
	lines := make([]pricing.PricedLineItem, 0, len(req.Items))
	for _, in := range req.Items {
		id, err := repository.ParseID(in.ItemID)
		if err != nil {
			allErrs = append(allErrs, pricing.ValidationError{
				Code:    pricing.CodeUnknownOption,
				ItemID:  in.ItemID,
				Message: "unknown menu item id",
			})
			continue
		}
		snap, err := s.Catalog.GetItemSnapshot(id)
		if err != nil {
			return nil, err
		}
		line, verrs := pricing.ValidateAndPrice(*snap, in.Selections, in.Toppings, in.Qty)
		if len(verrs) > 0 {
			allErrs = append(allErrs, verrs...)
			continue
		}
		lines = append(lines, *line)
	}
	if len(allErrs) > 0 {
		return nil, allErrs
	}

	cfg, err := s.Catalog.GetCartConfig()
	if err != nil {
		return nil, err
	}
	rules, err := s.Catalog.GetActivePromotions(now)
	if err != nil {
		return nil, err
	}
	return pricing.PriceCart(lines, pricing.OrderType(req.OrderType), cfg, rules, now)
}

// Checkout reprices the raw selections server-side, reconciles against the
// client-submitted total and, only on agreement, persists the order with
// the SERVER-computed breakdown inside one transaction.
func (s *CheckoutService) Checkout(req *CheckoutReq) (*CheckoutRes, error) {
	cart, err := s.Quote(&req.QuoteReq)
	if err != nil {
		return nil, err
	}
	if err := pricing.Reconcile(req.ClientTotal, cart, s.Tolerance); err != nil {
		return nil, err
	}

	order := entity.Order{
		OrderNumber: uuid.NewString(),
		OrderType:   string(cart.OrderType),
		Subtotal:    cart.Subtotal,
		Discount:    cart.Discount,
		Tax:         cart.Tax,
		DeliveryFee: cart.DeliveryFee,
		Total:       cart.GrandTotal,
		Address:     req.Address,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Orders.CreateOrder(tx, &order); err != nil {
			return err
		}
		for i, line := range cart.Lines {
			itemID, err := repository.ParseID(line.ItemID)
			if err != nil {
				return err
			}
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: itemID,
				Qty:        line.Quantity,
				UnitPrice:  pricing.RoundMoney(line.UnitPrice),
				Total:      line.LineTotal,
			}
			if i < len(req.Items) {
				oi.Note = req.Items[i].Note
			}
			oi.Selections, oi.Toppings, err = selectionRows(line)
			if err != nil {
				return err
			}
			if err := s.Orders.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}
		for _, p := range cart.Promotions {
			promoID, err := repository.ParseID(p.RuleID)
			if err != nil {
				return err
			}
			op := entity.OrderPromotion{OrderID: order.ID, PromotionID: promoID, Amount: p.Amount}
			if err := s.Orders.CreateOrderPromotion(tx, &op); err != nil {
				return err
			}
			if err := s.Orders.IncrementPromotionUsage(tx, promoID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CheckoutRes{OrderNumber: order.OrderNumber, Cart: cart}, nil
}

// selectionRows snapshots the priced modifiers of one line into order rows
// so the order records what was actually charged, not current catalog data.
// The pricer emits topping modifiers in the same order as the topping
// inputs, which keeps the zip below valid even when one topping appears
// twice with different placements.
func selectionRows(line pricing.PricedLineItem) ([]entity.OrderItemSelection, []entity.OrderItemTopping, error) {
	byOption := make(map[string]decimal.Decimal)
	var toppingMods []decimal.Decimal
	for _, m := range line.Modifiers {
		if m.OptionID != "" {
			byOption[m.OptionID] = m.Amount
		}
		if m.ToppingID != "" {
			toppingMods = append(toppingMods, m.Amount)
		}
	}

	sels := make([]entity.OrderItemSelection, 0, len(line.Selections))
	for _, sel := range line.Selections {
		optID, err := repository.ParseID(sel.OptionID)
		if err != nil {
			return nil, nil, err
		}
		sels = append(sels, entity.OrderItemSelection{
			OptionID:   optID,
			Quantity:   sel.Quantity,
			PriceDelta: pricing.RoundMoney(byOption[sel.OptionID]),
		})
	}

	tops := make([]entity.OrderItemTopping, 0, len(line.Toppings))
	for i, t := range line.Toppings {
		topID, err := repository.ParseID(t.ToppingID)
		if err != nil {
			return nil, nil, err
		}
		delta := decimal.Zero
		if i < len(toppingMods) {
			delta = toppingMods[i]
		}
		tops = append(tops, entity.OrderItemTopping{
			ToppingID:  topID,
			Placement:  string(t.Placement),
			Intensity:  string(t.Intensity),
			Quantity:   t.Quantity,
			PriceDelta: pricing.RoundMoney(delta),
		})
	}
	return sels, tops, nil
}
