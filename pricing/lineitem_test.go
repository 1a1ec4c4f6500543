package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentModifiersAreAgainstBasePrice(t *testing.T) {
	item := ItemSnapshot{
		ID: "1", BasePrice: d("10.00"),
		Groups: []GroupSnapshot{{
			ID: "g", SelectionType: MultiSelect, MaxSelections: 2,
			Options: []OptionSnapshot{
				{ID: "p1", Name: "Plus 10", PriceModifier: d("10"), PriceType: PricePercent, MaxQuantity: 1, Active: true},
				{ID: "p2", Name: "Also Plus 10", PriceModifier: d("10"), PriceType: PricePercent, MaxQuantity: 1, Active: true},
			},
		}},
	}
	sels := []SelectionInput{{OptionID: "p1", Quantity: 1}, {OptionID: "p2", Quantity: 1}}
	line := PriceLineItem(item, sels, nil, 1)

	// additive against base: 10 + 1 + 1, never 10 * 1.1 * 1.1
	assert.True(t, line.UnitPrice.Equal(d("12.00")), "got %s", line.UnitPrice)
	assert.True(t, line.LineTotal.Equal(d("12.00")))
}

func TestFlatModifierScalesWithOptionQuantity(t *testing.T) {
	item := ItemSnapshot{
		ID: "1", BasePrice: d("5.49"),
		Groups: []GroupSnapshot{{
			ID: "g", SelectionType: MultiSelect,
			Options: []OptionSnapshot{
				{ID: "dip", Name: "Ranch", PriceModifier: d("0.75"), PriceType: PriceFlat, MaxQuantity: 3, Active: true},
			},
		}},
	}
	line := PriceLineItem(item, []SelectionInput{{OptionID: "dip", Quantity: 3}}, nil, 1)
	assert.True(t, line.UnitPrice.Equal(d("7.74")), "got %s", line.UnitPrice)
}

func TestToppingIntensityAndPlacement(t *testing.T) {
	item := ItemSnapshot{
		ID: "1", BasePrice: d("10.00"),
		Toppings: []ToppingSnapshot{
			{ID: "t-pep", Name: "Pepperoni", Price: d("2.00"), Active: true},
		},
	}

	// EXTRA on the whole pie: 2.00 * 1.5 = 3.00
	line := PriceLineItem(item, nil, []ToppingInput{
		{ToppingID: "t-pep", Placement: PlacementWhole, Intensity: IntensityExtra, Quantity: 1},
	}, 1)
	require.Len(t, line.Modifiers, 1)
	assert.True(t, line.Modifiers[0].Amount.Equal(d("3.00")), "got %s", line.Modifiers[0].Amount)

	// same topping EXTRA on the left half only: half coverage, half cost
	line = PriceLineItem(item, nil, []ToppingInput{
		{ToppingID: "t-pep", Placement: PlacementLeftHalf, Intensity: IntensityExtra, Quantity: 1},
	}, 1)
	require.Len(t, line.Modifiers, 1)
	assert.True(t, line.Modifiers[0].Amount.Equal(d("1.50")), "got %s", line.Modifiers[0].Amount)
}

func TestSameToppingBothHalvesPricedIndependently(t *testing.T) {
	item := ItemSnapshot{
		ID: "1", BasePrice: d("10.00"),
		Toppings: []ToppingSnapshot{
			{ID: "t-pep", Name: "Pepperoni", Price: d("2.00"), Active: true},
		},
	}
	tops := []ToppingInput{
		{ToppingID: "t-pep", Placement: PlacementLeftHalf, Intensity: IntensityExtra, Quantity: 1},   // 1.50
		{ToppingID: "t-pep", Placement: PlacementRightHalf, Intensity: IntensityLight, Quantity: 1},  // 0.75
	}
	line := PriceLineItem(item, nil, tops, 1)
	assert.True(t, line.UnitPrice.Equal(d("12.25")), "got %s", line.UnitPrice)
}

func TestNegativeUnitPriceClampsToZero(t *testing.T) {
	item := ItemSnapshot{
		ID: "1", BasePrice: d("5.00"),
		Groups: []GroupSnapshot{{
			ID: "g", SelectionType: MultiSelect,
			Options: []OptionSnapshot{
				{ID: "promo", Name: "Huge Rebate", PriceModifier: d("-20.00"), PriceType: PriceFlat, MaxQuantity: 1, Active: true},
			},
		}},
	}
	line := PriceLineItem(item, []SelectionInput{{OptionID: "promo", Quantity: 1}}, nil, 2)
	assert.True(t, line.UnitPrice.IsZero())
	assert.True(t, line.LineTotal.IsZero())
}

func TestLineTotalMultipliesOrderedQuantity(t *testing.T) {
	item := ItemSnapshot{ID: "1", BasePrice: d("11.99")}
	line := PriceLineItem(item, nil, nil, 3)
	assert.Equal(t, 3, line.Quantity)
	assert.True(t, line.LineTotal.Equal(d("35.97")), "got %s", line.LineTotal)
}

func TestRoundingOnlyAtLineTotal(t *testing.T) {
	// three light half toppings at 0.85: each 0.85*0.75*0.5 = 0.31875,
	// summed unrounded then rounded once at the end
	item := ItemSnapshot{
		ID: "1", BasePrice: d("10.00"),
		Toppings: []ToppingSnapshot{
			{ID: "t", Name: "Feta", Price: d("0.85"), Active: true},
		},
	}
	tops := []ToppingInput{
		{ToppingID: "t", Placement: PlacementLeftHalf, Intensity: IntensityLight, Quantity: 3},
	}
	line := PriceLineItem(item, nil, tops, 1)
	// 10 + 3*0.31875 = 10.95625 -> 10.96, not 10 + 3*0.32 = 10.96 here but
	// distinct from per-modifier rounding when quantities differ
	assert.True(t, line.LineTotal.Equal(d("10.96")), "got %s", line.LineTotal)
	assert.True(t, line.UnitPrice.Equal(d("10.95625")), "unit stays unrounded, got %s", line.UnitPrice)
}

func TestValidateAndPriceIsIdempotent(t *testing.T) {
	item := testItem()
	sels := []SelectionInput{
		{OptionID: "o-large", Quantity: 1},
		{OptionID: "o-ranch", Quantity: 2},
		{OptionID: "o-garlic", Quantity: 1},
	}
	tops := []ToppingInput{
		{ToppingID: "t-pep", Placement: PlacementWhole, Intensity: IntensityExtra, Quantity: 1},
	}

	first, errs := ValidateAndPrice(item, sels, tops, 2)
	require.Empty(t, errs)
	second, errs := ValidateAndPrice(item, sels, tops, 2)
	require.Empty(t, errs)

	assert.True(t, first.UnitPrice.Equal(second.UnitPrice))
	assert.True(t, first.LineTotal.Equal(second.LineTotal))
	assert.Equal(t, len(first.Modifiers), len(second.Modifiers))
}

func TestValidateAndPriceReturnsBatchOnFailure(t *testing.T) {
	line, errs := ValidateAndPrice(testItem(), []SelectionInput{{OptionID: "bogus", Quantity: 1}}, nil, 1)
	assert.Nil(t, line)
	assert.NotEmpty(t, errs)
}
