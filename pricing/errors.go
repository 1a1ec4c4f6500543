package pricing

import (
	"errors"
	"fmt"
	"strings"
)

// Validation error codes. These are selection-shape errors the client can
// fix and resubmit.
const (
	CodeUnknownOption      = "UnknownOption"
	CodeRequiredGroupEmpty = "RequiredGroupEmpty"
	CodeTooManySelections  = "TooManySelections"
	CodeTooFewSelections   = "TooFewSelections"
	CodeQuantityExceeded   = "QuantityExceeded"
)

var (
	// ErrMinimumOrderNotMet rejects a delivery order below the configured
	// minimum instead of silently dropping the fee.
	ErrMinimumOrderNotMet = errors.New("minimum order amount not met for delivery")

	// ErrPriceMismatch rejects a checkout whose client total disagrees with
	// the server-computed total beyond tolerance. The order is never persisted.
	ErrPriceMismatch = errors.New("client total does not match server-computed total")

	// ErrCatalogUnavailable wraps catalog I/O failures. The engine fails
	// closed; the caller decides whether to retry.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrUnknownDiscountType is returned when a promotion rule carries a
	// discount type the engine does not know how to evaluate.
	ErrUnknownDiscountType = errors.New("unknown promotion discount type")
)

// ValidationError is one violation of a group or option rule.
type ValidationError struct {
	Code     string `json:"code"`
	ItemID   string `json:"itemId,omitempty"`
	GroupID  string `json:"groupId,omitempty"`
	OptionID string `json:"optionId,omitempty"`
	Message  string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ValidationErrors is the full batch of violations found in one pass, so a
// single resubmission can fix everything.
type ValidationErrors []ValidationError

func (es ValidationErrors) Error() string {
	msgs := make([]string, 0, len(es))
	for _, e := range es {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}
