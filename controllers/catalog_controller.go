package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/auy1jlll/pizza-vx-sub010/pkg/resp"
	"github.com/auy1jlll/pizza-vx-sub010/services"
)

type CatalogController struct{ Svc *services.CatalogService }

func NewCatalogController(s *services.CatalogService) *CatalogController {
	return &CatalogController{Svc: s}
}

// GET /catalog/categories
func (h *CatalogController) Categories(c *gin.Context) {
	cats, err := h.Svc.Categories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

// GET /catalog/categories/:slug
func (h *CatalogController) Menu(c *gin.Context) {
	out, err := h.Svc.MenuForCategory(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /catalog/items/:id
func (h *CatalogController) Item(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	item, err := h.Svc.ItemDetail(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}
