package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/auy1jlll/pizza-vx-sub010/controllers"
	"github.com/auy1jlll/pizza-vx-sub010/middlewares"
	"github.com/auy1jlll/pizza-vx-sub010/repository"
	"github.com/auy1jlll/pizza-vx-sub010/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	catalogSvc := services.NewCatalogService(catalogRepo)
	checkoutSvc := services.NewCheckoutService(db, catalogRepo, orderRepo)
	promoSvc := services.NewPromotionService(db)

	// Controllers
	catalogCtrl := controllers.NewCatalogController(catalogSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc, orderRepo)
	promoCtrl := controllers.NewPromotionController(promoSvc)

	// Public catalog
	cat := r.Group("/catalog")
	{
		cat.GET("/categories", catalogCtrl.Categories)
		cat.GET("/categories/:slug", catalogCtrl.Menu)
		cat.GET("/items/:id", catalogCtrl.Item)
	}

	// Pricing + checkout
	r.POST("/cart/quote", checkoutCtrl.Quote)
	r.POST("/checkout", checkoutCtrl.Checkout)
	r.GET("/orders/:number", checkoutCtrl.Detail)

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware("admin"))
	{
		admin.GET("/orders", checkoutCtrl.List)
		admin.GET("/promotions", promoCtrl.List)
		admin.POST("/promotions", promoCtrl.Create)
		admin.PATCH("/promotions/:id", promoCtrl.Update)
		admin.DELETE("/promotions/:id", promoCtrl.Delete)
	}
}
