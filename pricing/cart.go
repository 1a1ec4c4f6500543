package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceCart aggregates priced line items into the full cart breakdown.
// Ordering is fixed: subtotal, then promotion discount, then tax on the
// discounted amount, then the delivery fee. Delivery below the configured
// minimum order is rejected with ErrMinimumOrderNotMet, never silently
// waived.
func PriceCart(lines []PricedLineItem, orderType OrderType, cfg CartConfig, rules []PromotionRule, now time.Time) (*PricedCart, error) {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal)
	}

	promos, discount, err := BestPromotion(lines, subtotal, rules, now)
	if err != nil {
		return nil, err
	}

	discounted := subtotal.Sub(discount)
	tax := RoundMoney(percentOf(discounted, cfg.TaxRate))

	fee := decimal.Zero
	if orderType == OrderDelivery {
		if subtotal.LessThan(cfg.MinimumOrder) {
			return nil, ErrMinimumOrderNotMet
		}
		fee = cfg.DeliveryFee
	}

	return &PricedCart{
		Lines:       lines,
		OrderType:   orderType,
		Subtotal:    RoundMoney(subtotal),
		Promotions:  promos,
		Discount:    discount,
		TaxRate:     cfg.TaxRate,
		Tax:         tax,
		DeliveryFee: fee,
		GrandTotal:  RoundMoney(discounted.Add(tax).Add(fee)),
	}, nil
}
