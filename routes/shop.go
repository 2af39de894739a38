package routes

import (
	"github.com/axis-silicon/storefront-api/advisor"
	advisorController "github.com/axis-silicon/storefront-api/controllers/advisor"
	productcontroller "github.com/axis-silicon/storefront-api/controllers/product"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupShopRoutes registers the public storefront endpoints. No auth: the
// catalog and the advisory tool are open to every visitor.
func SetupShopRoutes(r *gin.Engine, db *gorm.DB, advisorClient *advisor.Client) {
	shop := r.Group("/shop")
	{
		shop.GET("/products", productcontroller.GetProducts(db))
		shop.GET("/products/:id", productcontroller.GetProductByID(db))
		shop.GET("/categories", productcontroller.GetAllCategories(db))
	}

	r.POST("/advisor/project-advice", advisorController.GetProjectAdvice(advisorClient))
}
