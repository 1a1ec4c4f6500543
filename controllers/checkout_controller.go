package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/auy1jlll/pizza-vx-sub010/pkg/resp"
	"github.com/auy1jlll/pizza-vx-sub010/pricing"
	"github.com/auy1jlll/pizza-vx-sub010/repository"
	"github.com/auy1jlll/pizza-vx-sub010/services"
)

type CheckoutController struct {
	Svc    *services.CheckoutService
	Orders *repository.OrderRepository
}

func NewCheckoutController(svc *services.CheckoutService, orders *repository.OrderRepository) *CheckoutController {
	return &CheckoutController{Svc: svc, Orders: orders}
}

// POST /cart/quote: validate and price without persisting
func (h *CheckoutController) Quote(c *gin.Context) {
	var req services.QuoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cart, err := h.Svc.Quote(&req)
	if err != nil {
		writePricingError(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /checkout: reconcile against the client total, persist on match
func (h *CheckoutController) Checkout(c *gin.Context) {
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Checkout(&req)
	if err != nil {
		writePricingError(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /orders/:number
func (h *CheckoutController) Detail(c *gin.Context) {
	o, err := h.Orders.GetOrderByNumber(c.Param("number"))
	if err != nil {
		resp.NotFound(c, "order not found")
		return
	}
	resp.OK(c, o)
}

// GET /orders
func (h *CheckoutController) List(c *gin.Context) {
	rows, err := h.Orders.ListOrders(50)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

// writePricingError maps engine failures onto HTTP statuses. Mismatch and
// catalog failures are never downgraded to a best-effort price.
func writePricingError(c *gin.Context, err error) {
	var verrs pricing.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		resp.Unprocessable(c, verrs)
	case errors.Is(err, pricing.ErrMinimumOrderNotMet):
		resp.Unprocessable(c, []gin.H{{"code": "MinimumOrderNotMet", "message": err.Error()}})
	case errors.Is(err, pricing.ErrPriceMismatch):
		resp.Conflict(c, err.Error())
	case errors.Is(err, repository.ErrItemNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrEmptyOrder):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, pricing.ErrCatalogUnavailable):
		resp.Unavailable(c, "catalog unavailable")
	default:
		resp.ServerError(c, err)
	}
}
