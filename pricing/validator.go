package pricing

import "fmt"

// ValidateSelections checks a client's option and topping picks against one
// item's structural rules. It is pure: the snapshot is only read, and every
// violation found is collected so the caller can report them together.
//
// Returned selections are normalized: zero-quantity picks are dropped and
// duplicate picks of the same option are merged by summing quantities.
func ValidateSelections(item ItemSnapshot, sels []SelectionInput, tops []ToppingInput) ([]SelectionInput, []ToppingInput, ValidationErrors) {
	var errs ValidationErrors

	optionGroup := make(map[string]string)   // option id -> group id
	options := make(map[string]OptionSnapshot)
	for _, g := range item.Groups {
		for _, o := range g.Options {
			if !o.Active {
				continue // inactive options are not purchasable
			}
			optionGroup[o.ID] = g.ID
			options[o.ID] = o
		}
	}

	// Merge duplicates, drop quantity<=0 ("not selected").
	merged := make(map[string]int)
	order := make([]string, 0, len(sels))
	for _, s := range sels {
		if s.Quantity <= 0 {
			continue
		}
		if _, seen := merged[s.OptionID]; !seen {
			order = append(order, s.OptionID)
		}
		merged[s.OptionID] += s.Quantity
	}

	normalized := make([]SelectionInput, 0, len(order))
	perGroup := make(map[string]int) // group id -> distinct selected options
	for _, id := range order {
		qty := merged[id]
		opt, ok := options[id]
		if !ok {
			errs = append(errs, ValidationError{
				Code:     CodeUnknownOption,
				OptionID: id,
				Message:  fmt.Sprintf("option %q does not belong to item %q", id, item.ID),
			})
			continue
		}
		maxQty := opt.MaxQuantity
		if maxQty < 1 {
			maxQty = 1
		}
		if qty > maxQty {
			errs = append(errs, ValidationError{
				Code:     CodeQuantityExceeded,
				GroupID:  optionGroup[id],
				OptionID: id,
				Message:  fmt.Sprintf("option %q allows at most %d, got %d", opt.Name, maxQty, qty),
			})
			continue
		}
		perGroup[optionGroup[id]]++
		normalized = append(normalized, SelectionInput{OptionID: id, Quantity: qty})
	}

	for _, g := range item.Groups {
		distinct := perGroup[g.ID]
		if distinct == 0 {
			// Required-ness, not minSelections, decides whether an empty
			// group is an error.
			if g.IsRequired {
				errs = append(errs, ValidationError{
					Code:    CodeRequiredGroupEmpty,
					GroupID: g.ID,
					Message: fmt.Sprintf("group %q requires a selection", g.Name),
				})
			}
			continue
		}
		if g.SelectionType == SingleSelect {
			if distinct > 1 {
				errs = append(errs, ValidationError{
					Code:    CodeTooManySelections,
					GroupID: g.ID,
					Message: fmt.Sprintf("group %q allows a single choice, got %d", g.Name, distinct),
				})
			}
			continue
		}
		if distinct < g.MinSelections {
			errs = append(errs, ValidationError{
				Code:    CodeTooFewSelections,
				GroupID: g.ID,
				Message: fmt.Sprintf("group %q requires at least %d selections, got %d", g.Name, g.MinSelections, distinct),
			})
		}
		if g.MaxSelections > 0 && distinct > g.MaxSelections {
			errs = append(errs, ValidationError{
				Code:    CodeTooManySelections,
				GroupID: g.ID,
				Message: fmt.Sprintf("group %q allows at most %d selections, got %d", g.Name, g.MaxSelections, distinct),
			})
		}
	}

	normTops, topErrs := validateToppings(item, tops)
	errs = append(errs, topErrs...)

	for i := range errs {
		errs[i].ItemID = item.ID
	}
	return normalized, normTops, errs
}

func validateToppings(item ItemSnapshot, tops []ToppingInput) ([]ToppingInput, ValidationErrors) {
	var errs ValidationErrors

	known := make(map[string]ToppingSnapshot, len(item.Toppings))
	for _, t := range item.Toppings {
		if t.Active {
			known[t.ID] = t
		}
	}

	normalized := make([]ToppingInput, 0, len(tops))
	for _, t := range tops {
		if t.Quantity <= 0 {
			continue
		}
		if _, ok := known[t.ToppingID]; !ok {
			errs = append(errs, ValidationError{
				Code:     CodeUnknownOption,
				OptionID: t.ToppingID,
				Message:  fmt.Sprintf("topping %q is not available on item %q", t.ToppingID, item.ID),
			})
			continue
		}
		if t.Placement == "" {
			t.Placement = PlacementWhole
		}
		if t.Intensity == "" {
			t.Intensity = IntensityRegular
		}
		normalized = append(normalized, t)
	}
	return normalized, errs
}
