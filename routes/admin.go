package routes

import (
	analyticsController "github.com/axis-silicon/storefront-api/controllers/analytics"
	orderControllers "github.com/axis-silicon/storefront-api/controllers/order"
	productcontroller "github.com/axis-silicon/storefront-api/controllers/product"
	"github.com/axis-silicon/storefront-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints behind the admin JWT.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		// ─────────── Order Ledger ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrders(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatus(db))
		}

		// ─────────── Dashboard Analytics ───────────
		adminGroup.GET("/analytics", analyticsController.GetDashboard(db))
	}

	// WebSocket endpoint for real-time order updates. Registered outside the
	// JWT middleware: browsers cannot attach Authorization headers to
	// websocket upgrades.
	r.GET("/admin/orders/ws", orderControllers.OrderWebSocket)
}
