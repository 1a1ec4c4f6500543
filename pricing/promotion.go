package pricing

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// BestPromotion arbitrates a catalog of active rules against the priced,
// pre-discount cart. Exactly one non-stackable rule may win: the one that
// yields the largest discount, with priority only breaking ties. Every
// eligible stackable rule combines with it. No eligible rule is not an
// error: the cart proceeds with zero discount.
func BestPromotion(lines []PricedLineItem, subtotal decimal.Decimal, rules []PromotionRule, now time.Time) ([]AppliedPromotion, decimal.Decimal, error) {
	type candidate struct {
		rule    PromotionRule
		applied AppliedPromotion
	}

	var best *candidate
	var stackable []candidate

	for _, r := range rules {
		if !eligible(r, lines, subtotal, now) {
			continue
		}
		amount, detail, err := discountFor(r, lines, subtotal)
		if err != nil {
			return nil, decimal.Zero, err
		}
		if !amount.IsPositive() {
			continue
		}
		c := candidate{rule: r, applied: AppliedPromotion{
			RuleID:   r.ID,
			RuleName: r.Name,
			Amount:   RoundMoney(amount),
			Lines:    detail,
		}}
		if r.Stackable {
			stackable = append(stackable, c)
			continue
		}
		if best == nil ||
			c.applied.Amount.GreaterThan(best.applied.Amount) ||
			(c.applied.Amount.Equal(best.applied.Amount) && c.rule.Priority < best.rule.Priority) {
			best = &c
		}
	}

	var out []AppliedPromotion
	total := decimal.Zero
	if best != nil {
		out = append(out, best.applied)
		total = total.Add(best.applied.Amount)
	}
	sort.SliceStable(stackable, func(i, j int) bool {
		return stackable[i].rule.Priority < stackable[j].rule.Priority
	})
	for _, c := range stackable {
		out = append(out, c.applied)
		total = total.Add(c.applied.Amount)
	}

	// A discount can never exceed what the customer would have paid.
	if total.GreaterThan(subtotal) {
		total = subtotal
	}
	return out, total, nil
}

func eligible(r PromotionRule, lines []PricedLineItem, subtotal decimal.Decimal, now time.Time) bool {
	if r.StartAt != nil && now.Before(*r.StartAt) {
		return false
	}
	if r.EndAt != nil && now.After(*r.EndAt) {
		return false
	}
	if r.UsageLimit > 0 && r.UsageCount >= r.UsageLimit {
		return false
	}
	if subtotal.LessThan(r.MinOrder) {
		return false
	}
	if r.MinItems > 0 {
		count := 0
		for _, l := range lines {
			count += l.Quantity
		}
		if count < r.MinItems {
			return false
		}
	}
	return len(eligibleLines(r, lines)) > 0
}

func eligibleLines(r PromotionRule, lines []PricedLineItem) []PricedLineItem {
	if len(r.CategoryIDs) == 0 && len(r.ItemIDs) == 0 {
		return lines
	}
	cats := toSet(r.CategoryIDs)
	items := toSet(r.ItemIDs)
	out := make([]PricedLineItem, 0, len(lines))
	for _, l := range lines {
		if cats[l.CategoryID] || items[l.ItemID] {
			out = append(out, l)
		}
	}
	return out
}

func toSet(ids []string) map[string]bool {
	m := make(map[string]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

func discountFor(r PromotionRule, lines []PricedLineItem, subtotal decimal.Decimal) (decimal.Decimal, []DiscountLine, error) {
	scoped := eligibleLines(r, lines)
	scopedTotal := decimal.Zero
	for _, l := range scoped {
		scopedTotal = scopedTotal.Add(l.LineTotal)
	}

	switch r.DiscountType {
	case DiscountPercent:
		return percentOf(scopedTotal, r.Value), nil, nil
	case DiscountFlat:
		if r.Value.GreaterThan(scopedTotal) {
			return scopedTotal, nil, nil
		}
		return r.Value, nil, nil
	case DiscountSecondHalfOff:
		return secondHalfOff(scoped)
	default:
		return decimal.Zero, nil, fmt.Errorf("%w: %q", ErrUnknownDiscountType, r.DiscountType)
	}
}

// secondHalfOff expands the eligible lines into individual units, sorts by
// unit price descending and halves the price of the second unit of each
// pair. An unpaired leftover unit stays at full price.
func secondHalfOff(lines []PricedLineItem) (decimal.Decimal, []DiscountLine, error) {
	type unit struct {
		itemID string
		price  decimal.Decimal
	}
	units := make([]unit, 0, len(lines))
	for _, l := range lines {
		for i := 0; i < l.Quantity; i++ {
			units = append(units, unit{itemID: l.ItemID, price: l.UnitPrice})
		}
	}
	sort.SliceStable(units, func(i, j int) bool {
		return units[i].price.GreaterThan(units[j].price)
	})

	half := decimal.NewFromFloat(0.5)
	total := decimal.Zero
	var detail []DiscountLine
	for i := 1; i < len(units); i += 2 {
		off := units[i].price.Mul(half)
		total = total.Add(off)
		detail = append(detail, DiscountLine{
			ItemID: units[i].itemID,
			Amount: RoundMoney(off),
			Reason: "second item half off",
		})
	}
	return total, detail, nil
}
