package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(id, catID, unit string, qty int) PricedLineItem {
	u := d(unit)
	return PricedLineItem{
		ItemID:     id,
		CategoryID: catID,
		UnitPrice:  u,
		Quantity:   qty,
		LineTotal:  RoundMoney(u.Mul(decimal.NewFromInt(int64(qty)))),
	}
}

func cartOf(lines ...PricedLineItem) ([]PricedLineItem, decimal.Decimal) {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal)
	}
	return lines, subtotal
}

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestSecondHalfOffTwoPizzas(t *testing.T) {
	lines, subtotal := cartOf(
		line("pz1", "pizza", "24.99", 1),
		line("pz2", "pizza", "18.99", 1),
	)
	rules := []PromotionRule{{
		ID: "r1", Name: "BOGO", DiscountType: DiscountSecondHalfOff,
		CategoryIDs: []string{"pizza"},
	}}

	applied, total, err := BestPromotion(lines, subtotal, rules, testNow)
	require.NoError(t, err)
	require.Len(t, applied, 1)
	// 50% of the second-most-expensive pizza: 18.99/2 = 9.495 -> 9.50
	assert.True(t, total.Equal(d("9.50")), "got %s", total)
	require.Len(t, applied[0].Lines, 1)
	assert.Equal(t, "pz2", applied[0].Lines[0].ItemID)
}

func TestSecondHalfOffThreePizzasDiscountsOnePair(t *testing.T) {
	lines, subtotal := cartOf(
		line("pz1", "pizza", "24.99", 1),
		line("pz2", "pizza", "18.99", 1),
		line("pz3", "pizza", "12.99", 1),
	)
	rules := []PromotionRule{{ID: "r1", DiscountType: DiscountSecondHalfOff, CategoryIDs: []string{"pizza"}}}

	_, total, err := BestPromotion(lines, subtotal, rules, testNow)
	require.NoError(t, err)
	// only the two highest pair up; the third stays full price
	assert.True(t, total.Equal(d("9.50")), "got %s", total)
}

func TestSecondHalfOffFourPizzasTwoPairs(t *testing.T) {
	lines, subtotal := cartOf(
		line("pz1", "pizza", "20.00", 2),
		line("pz2", "pizza", "10.00", 2),
	)
	rules := []PromotionRule{{ID: "r1", DiscountType: DiscountSecondHalfOff, CategoryIDs: []string{"pizza"}}}

	_, total, err := BestPromotion(lines, subtotal, rules, testNow)
	require.NoError(t, err)
	// pairs (20,20) and (10,10): 10.00 + 5.00 off
	assert.True(t, total.Equal(d("15.00")), "got %s", total)
}

func TestLargestDiscountWinsOverPriority(t *testing.T) {
	lines, subtotal := cartOf(line("i1", "c1", "100.00", 1))
	rules := []PromotionRule{
		{ID: "small", Name: "5 off", DiscountType: DiscountFlat, Value: d("5.00"), Priority: 1},
		{ID: "big", Name: "10%", DiscountType: DiscountPercent, Value: d("10"), Priority: 99},
	}

	applied, total, err := BestPromotion(lines, subtotal, rules, testNow)
	require.NoError(t, err)
	require.Len(t, applied, 1)
	assert.Equal(t, "big", applied[0].RuleID)
	assert.True(t, total.Equal(d("10.00")))
}

func TestPriorityBreaksDiscountTies(t *testing.T) {
	lines, subtotal := cartOf(line("i1", "c1", "100.00", 1))
	rules := []PromotionRule{
		{ID: "late", DiscountType: DiscountFlat, Value: d("10.00"), Priority: 50},
		{ID: "first", DiscountType: DiscountFlat, Value: d("10.00"), Priority: 5},
	}

	applied, _, err := BestPromotion(lines, subtotal, rules, testNow)
	require.NoError(t, err)
	require.Len(t, applied, 1)
	assert.Equal(t, "first", applied[0].RuleID)
}

func TestStackableRulesCombineWithOneNonStackable(t *testing.T) {
	lines, subtotal := cartOf(line("i1", "c1", "100.00", 1))
	rules := []PromotionRule{
		{ID: "ns1", DiscountType: DiscountPercent, Value: d("10"), Priority: 1},
		{ID: "ns2", DiscountType: DiscountFlat, Value: d("4.00"), Priority: 1},
		{ID: "stk", DiscountType: DiscountFlat, Value: d("2.00"), Stackable: true},
	}

	applied, total, err := BestPromotion(lines, subtotal, rules, testNow)
	require.NoError(t, err)
	require.Len(t, applied, 2)
	assert.Equal(t, "ns1", applied[0].RuleID)
	assert.Equal(t, "stk", applied[1].RuleID)
	assert.True(t, total.Equal(d("12.00")), "got %s", total)
}

func TestEligibilityFilters(t *testing.T) {
	lines, subtotal := cartOf(line("i1", "c1", "20.00", 1))

	past := testNow.Add(-48 * time.Hour)
	earlier := testNow.Add(-24 * time.Hour)
	later := testNow.Add(24 * time.Hour)

	tests := []struct {
		name string
		rule PromotionRule
		want bool
	}{
		{"window open", PromotionRule{ID: "r", DiscountType: DiscountFlat, Value: d("1"), StartAt: &earlier, EndAt: &later}, true},
		{"window closed", PromotionRule{ID: "r", DiscountType: DiscountFlat, Value: d("1"), StartAt: &past, EndAt: &earlier}, false},
		{"min order met", PromotionRule{ID: "r", DiscountType: DiscountFlat, Value: d("1"), MinOrder: d("20.00")}, true},
		{"min order not met", PromotionRule{ID: "r", DiscountType: DiscountFlat, Value: d("1"), MinOrder: d("20.01")}, false},
		{"min items not met", PromotionRule{ID: "r", DiscountType: DiscountFlat, Value: d("1"), MinItems: 2}, false},
		{"usage exhausted", PromotionRule{ID: "r", DiscountType: DiscountFlat, Value: d("1"), UsageLimit: 5, UsageCount: 5}, false},
		{"usage remaining", PromotionRule{ID: "r", DiscountType: DiscountFlat, Value: d("1"), UsageLimit: 5, UsageCount: 4}, true},
		{"category mismatch", PromotionRule{ID: "r", DiscountType: DiscountFlat, Value: d("1"), CategoryIDs: []string{"other"}}, false},
		{"item match", PromotionRule{ID: "r", DiscountType: DiscountFlat, Value: d("1"), ItemIDs: []string{"i1"}}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			applied, _, err := BestPromotion(lines, subtotal, []PromotionRule{tc.rule}, testNow)
			require.NoError(t, err)
			assert.Equal(t, tc.want, len(applied) == 1)
		})
	}
}

func TestNoEligibleRuleIsNotAnError(t *testing.T) {
	lines, subtotal := cartOf(line("i1", "c1", "5.00", 1))
	rules := []PromotionRule{{ID: "r", DiscountType: DiscountFlat, Value: d("1"), MinOrder: d("50")}}

	applied, total, err := BestPromotion(lines, subtotal, rules, testNow)
	require.NoError(t, err)
	assert.Empty(t, applied)
	assert.True(t, total.IsZero())
}

func TestUnknownDiscountTypeRejected(t *testing.T) {
	lines, subtotal := cartOf(line("i1", "c1", "5.00", 1))
	rules := []PromotionRule{{ID: "r", DiscountType: "MYSTERY_DEAL", Value: d("1")}}

	_, _, err := BestPromotion(lines, subtotal, rules, testNow)
	assert.ErrorIs(t, err, ErrUnknownDiscountType)
}

func TestFlatDiscountCappedAtEligibleSubtotal(t *testing.T) {
	lines, subtotal := cartOf(line("i1", "c1", "3.00", 1))
	rules := []PromotionRule{{ID: "r", DiscountType: DiscountFlat, Value: d("10.00")}}

	_, total, err := BestPromotion(lines, subtotal, rules, testNow)
	require.NoError(t, err)
	assert.True(t, total.Equal(d("3.00")), "got %s", total)
}

func TestRestrictedPercentAppliesToEligibleLinesOnly(t *testing.T) {
	lines, subtotal := cartOf(
		line("pz1", "pizza", "20.00", 1),
		line("soda", "drinks", "2.99", 1),
	)
	rules := []PromotionRule{{
		ID: "r", DiscountType: DiscountPercent, Value: d("50"), CategoryIDs: []string{"pizza"},
	}}

	_, total, err := BestPromotion(lines, subtotal, rules, testNow)
	require.NoError(t, err)
	assert.True(t, total.Equal(d("10.00")), "got %s", total)
}
