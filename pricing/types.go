package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// Selection type of a customization group.
type SelectionType string

const (
	SingleSelect SelectionType = "SINGLE_SELECT"
	MultiSelect  SelectionType = "MULTI_SELECT"
)

// How an option's price modifier is applied.
type PriceType string

const (
	PriceFlat    PriceType = "FLAT"
	PricePercent PriceType = "PERCENT" // percent of the item's base price
)

// Where a topping goes on the pizza.
type Placement string

const (
	PlacementWhole     Placement = "WHOLE"
	PlacementLeftHalf  Placement = "LEFT_HALF"
	PlacementRightHalf Placement = "RIGHT_HALF"
)

// How much of a topping is applied.
type Intensity string

const (
	IntensityLight   Intensity = "LIGHT"
	IntensityRegular Intensity = "REGULAR"
	IntensityExtra   Intensity = "EXTRA"
)

type OrderType string

const (
	OrderDelivery OrderType = "DELIVERY"
	OrderPickup   OrderType = "PICKUP"
)

type DiscountType string

const (
	DiscountPercent       DiscountType = "PERCENT"
	DiscountFlat          DiscountType = "FLAT"
	DiscountSecondHalfOff DiscountType = "BUY_ONE_GET_SECOND_HALF_OFF"
)

// OptionSnapshot is one selectable value inside a group, as the catalog
// stands at pricing time.
type OptionSnapshot struct {
	ID            string
	Name          string
	PriceModifier decimal.Decimal // FLAT: currency amount; PERCENT: percentage number (10 = 10%)
	PriceType     PriceType
	IsDefault     bool
	MaxQuantity   int // 0 or 1 = single pick, >1 = repeatable up to N
	Active        bool
}

// GroupSnapshot carries the group rules already merged with the per-item
// overrides (IsRequired, sort order) from the item↔group join.
type GroupSnapshot struct {
	ID            string
	Name          string
	SelectionType SelectionType
	MinSelections int
	MaxSelections int // 0 = unbounded (SINGLE_SELECT is always capped at 1)
	IsRequired    bool
	Options       []OptionSnapshot
}

// ToppingSnapshot is a purchasable pizza topping with its WHOLE-placement,
// REGULAR-intensity unit price.
type ToppingSnapshot struct {
	ID     string
	Name   string
	Price  decimal.Decimal
	Active bool
}

// ItemSnapshot is everything the engine needs to validate and price one
// menu item. The caller owns the snapshot; the engine never mutates it.
type ItemSnapshot struct {
	ID         string
	CategoryID string
	Name       string
	BasePrice  decimal.Decimal
	Groups     []GroupSnapshot
	Toppings   []ToppingSnapshot // empty unless the item accepts toppings
}

// SelectionInput is one client-submitted option pick.
type SelectionInput struct {
	OptionID string `json:"optionId"`
	Quantity int    `json:"quantity"`
}

// ToppingInput is one client-submitted topping pick. Distinct placements of
// the same topping are independent selections.
type ToppingInput struct {
	ToppingID string    `json:"toppingId"`
	Placement Placement `json:"placement"`
	Intensity Intensity `json:"intensity"`
	Quantity  int       `json:"quantity"`
}

// AppliedModifier records one resolved price contribution on a line item.
type AppliedModifier struct {
	OptionID  string          `json:"optionId,omitempty"`
	ToppingID string          `json:"toppingId,omitempty"`
	Label     string          `json:"label"`
	Quantity  int             `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"` // signed, unrounded contribution to the unit price
}

// PricedLineItem is the authoritative price of one ordered item.
type PricedLineItem struct {
	ItemID     string            `json:"itemId"`
	CategoryID string            `json:"categoryId"`
	Name       string            `json:"name"`
	BasePrice  decimal.Decimal   `json:"basePrice"`
	Modifiers  []AppliedModifier `json:"modifiers"`
	UnitPrice  decimal.Decimal   `json:"unitPrice"`
	Quantity   int               `json:"quantity"`
	LineTotal  decimal.Decimal   `json:"lineTotal"`

	Selections []SelectionInput `json:"selections,omitempty"`
	Toppings   []ToppingInput   `json:"toppings,omitempty"`
}

// PromotionRule is one active discount rule from the catalog.
type PromotionRule struct {
	ID           string
	Name         string
	DiscountType DiscountType
	Value        decimal.Decimal // PERCENT: percentage number; FLAT: currency amount
	MinOrder     decimal.Decimal
	MinItems     int
	CategoryIDs  []string // empty = any category
	ItemIDs      []string // empty = any item
	StartAt      *time.Time
	EndAt        *time.Time
	UsageLimit   int // 0 = unlimited
	UsageCount   int
	Priority     int // lower wins ties
	Stackable    bool
}

// DiscountLine explains which line an applied promotion touched.
type DiscountLine struct {
	ItemID string          `json:"itemId"`
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

// AppliedPromotion is the outcome of promotion arbitration.
type AppliedPromotion struct {
	RuleID   string          `json:"ruleId"`
	RuleName string          `json:"ruleName"`
	Amount   decimal.Decimal `json:"amount"`
	Lines    []DiscountLine  `json:"lines,omitempty"`
}

// CartConfig carries the externally configured cart parameters.
type CartConfig struct {
	TaxRate      decimal.Decimal // percentage number (8.25 = 8.25%)
	DeliveryFee  decimal.Decimal
	MinimumOrder decimal.Decimal // delivery-only gate on the subtotal
}

// PricedCart is the fully itemized cart breakdown.
type PricedCart struct {
	Lines       []PricedLineItem   `json:"lines"`
	OrderType   OrderType          `json:"orderType"`
	Subtotal    decimal.Decimal    `json:"subtotal"`
	Promotions  []AppliedPromotion `json:"promotions,omitempty"`
	Discount    decimal.Decimal    `json:"discount"`
	TaxRate     decimal.Decimal    `json:"taxRate"`
	Tax         decimal.Decimal    `json:"tax"`
	DeliveryFee decimal.Decimal    `json:"deliveryFee"`
	GrandTotal  decimal.Decimal    `json:"grandTotal"`
}
