package routes

import (
	orderControllers "github.com/axis-silicon/storefront-api/controllers/order"
	opsController "github.com/axis-silicon/storefront-api/controllers/ops"
	productcontroller "github.com/axis-silicon/storefront-api/controllers/product"
	"github.com/axis-silicon/storefront-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupOpsRoutes registers the server-to-server maintenance endpoints behind
// the shared API key.
func SetupOpsRoutes(r *gin.Engine, db *gorm.DB) {
	ops := r.Group("/ops")
	ops.Use(middleware.ValidateAPIKey)
	{
		ops.POST("/seed", opsController.SeedDatabase(db))
		ops.POST("/products/import-excel", productcontroller.ImportProductsFromExcel(db))
		ops.GET("/products/export-excel", productcontroller.ExportProductsToExcel(db))
		ops.GET("/orders/export-excel", orderControllers.ExportOrdersToExcel(db))
	}
}
