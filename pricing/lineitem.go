package pricing

import "github.com/shopspring/decimal"

// PriceLineItem computes the authoritative price of one ordered item from
// its base price and already-validated selections. Inputs must come from
// ValidateSelections; unknown ids are silently skipped here because the
// validator has already reported them.
//
// FLAT modifiers add priceModifier*quantity. PERCENT modifiers are always
// relative to the item's base price, never the running total, so two +10%
// modifiers on a $10 item give $12, not $12.10. Rounding happens once, at
// the line total.
func PriceLineItem(item ItemSnapshot, sels []SelectionInput, tops []ToppingInput, orderedQty int) PricedLineItem {
	if orderedQty < 1 {
		orderedQty = 1
	}

	options := make(map[string]OptionSnapshot)
	for _, g := range item.Groups {
		for _, o := range g.Options {
			if o.Active {
				options[o.ID] = o
			}
		}
	}
	toppings := make(map[string]ToppingSnapshot, len(item.Toppings))
	for _, t := range item.Toppings {
		if t.Active {
			toppings[t.ID] = t
		}
	}

	unit := item.BasePrice
	mods := make([]AppliedModifier, 0, len(sels)+len(tops))

	for _, s := range sels {
		opt, ok := options[s.OptionID]
		if !ok {
			continue
		}
		qty := decimal.NewFromInt(int64(s.Quantity))
		var amount decimal.Decimal
		switch opt.PriceType {
		case PricePercent:
			amount = percentOf(item.BasePrice, opt.PriceModifier).Mul(qty)
		default:
			amount = opt.PriceModifier.Mul(qty)
		}
		unit = unit.Add(amount)
		mods = append(mods, AppliedModifier{
			OptionID: s.OptionID,
			Label:    opt.Name,
			Quantity: s.Quantity,
			Amount:   amount,
		})
	}

	for _, t := range tops {
		top, ok := toppings[t.ToppingID]
		if !ok {
			continue
		}
		amount := top.Price.
			Mul(intensityFactor(t.Intensity)).
			Mul(placementFactor(t.Placement)).
			Mul(decimal.NewFromInt(int64(t.Quantity)))
		unit = unit.Add(amount)
		mods = append(mods, AppliedModifier{
			ToppingID: t.ToppingID,
			Label:     toppingLabel(top.Name, t),
			Quantity:  t.Quantity,
			Amount:    amount,
		})
	}

	// Never charge a negative price.
	if unit.IsNegative() {
		unit = decimal.Zero
	}

	return PricedLineItem{
		ItemID:     item.ID,
		CategoryID: item.CategoryID,
		Name:       item.Name,
		BasePrice:  item.BasePrice,
		Modifiers:  mods,
		UnitPrice:  unit,
		Quantity:   orderedQty,
		LineTotal:  RoundMoney(unit.Mul(decimal.NewFromInt(int64(orderedQty)))),
		Selections: sels,
		Toppings:   tops,
	}
}

func toppingLabel(name string, t ToppingInput) string {
	label := name
	if t.Intensity != IntensityRegular && t.Intensity != "" {
		label += " (" + string(t.Intensity) + ")"
	}
	if t.Placement != PlacementWhole && t.Placement != "" {
		label += " [" + string(t.Placement) + "]"
	}
	return label
}

// ValidateAndPrice is the combined engine entry point for one line item:
// validate the raw selections, then price the normalized result. On any
// validation failure the priced line is nil and the batch of violations is
// returned instead.
func ValidateAndPrice(item ItemSnapshot, sels []SelectionInput, tops []ToppingInput, orderedQty int) (*PricedLineItem, ValidationErrors) {
	normSels, normTops, errs := ValidateSelections(item, sels, tops)
	if len(errs) > 0 {
		return nil, errs
	}
	line := PriceLineItem(item, normSels, normTops, orderedQty)
	return &line, nil
}
