package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/auy1jlll/pizza-vx-sub010/entity"
	"github.com/auy1jlll/pizza-vx-sub010/pkg/resp"
	"github.com/auy1jlll/pizza-vx-sub010/pricing"
	"github.com/auy1jlll/pizza-vx-sub010/services"
)

type PromotionController struct{ Svc *services.PromotionService }

func NewPromotionController(s *services.PromotionService) *PromotionController {
	return &PromotionController{Svc: s}
}

// GET /admin/promotions
func (h *PromotionController) List(c *gin.Context) {
	promos, err := h.Svc.GetAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, promos)
}

// POST /admin/promotions
func (h *PromotionController) Create(c *gin.Context) {
	var promo entity.Promotion
	if err := c.ShouldBindJSON(&promo); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Create(&promo); err != nil {
		if errors.Is(err, pricing.ErrUnknownDiscountType) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, promo)
}

// PATCH /admin/promotions/:id
func (h *PromotionController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid promotion id")
		return
	}
	var promo entity.Promotion
	if err := c.ShouldBindJSON(&promo); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Update(uint(id), &promo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "promotion not found")
			return
		}
		if errors.Is(err, pricing.ErrUnknownDiscountType) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /admin/promotions/:id
func (h *PromotionController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid promotion id")
		return
	}
	if err := h.Svc.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
