package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultTolerance covers display/float rounding on the client, not
// business-logic drift: one cent.
var DefaultTolerance = decimal.NewFromFloat(0.01)

// Reconcile compares a client-submitted grand total against the
// server-priced cart. A difference beyond tolerance means the client priced
// against stale or tampered data and the order must not be created; on a
// match the server breakdown is what gets persisted.
func Reconcile(clientTotal decimal.Decimal, cart *PricedCart, tolerance decimal.Decimal) error {
	if tolerance.IsNegative() {
		tolerance = DefaultTolerance
	}
	diff := clientTotal.Sub(cart.GrandTotal).Abs()
	if diff.GreaterThan(tolerance) {
		return fmt.Errorf("%w: client %s, server %s", ErrPriceMismatch,
			clientTotal.StringFixed(2), cart.GrandTotal.StringFixed(2))
	}
	return nil
}
