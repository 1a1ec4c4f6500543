package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// RoundMoney is the single rounding point for the whole engine: 2 decimal
// places, half away from zero. Intermediate modifier math stays unrounded so
// repeated modifiers cannot accumulate drift.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// percentOf resolves a percentage number (10 = 10%) against a base amount.
func percentOf(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(hundred)
}

func intensityFactor(i Intensity) decimal.Decimal {
	switch i {
	case IntensityLight:
		return decimal.NewFromFloat(0.75)
	case IntensityExtra:
		return decimal.NewFromFloat(1.5)
	default:
		return decimal.NewFromInt(1)
	}
}

// Half coverage is charged at half the whole-pie contribution.
func placementFactor(p Placement) decimal.Decimal {
	switch p {
	case PlacementLeftHalf, PlacementRightHalf:
		return decimal.NewFromFloat(0.5)
	default:
		return decimal.NewFromInt(1)
	}
}
