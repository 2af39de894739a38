package routes

import (
	"github.com/axis-silicon/storefront-api/cart"
	cartControllers "github.com/axis-silicon/storefront-api/controllers/cart"
	"github.com/axis-silicon/storefront-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCartRoutes registers the "/cart/*" endpoints. Requires a guest or
// admin token; the cart is scoped to the token's session id.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB, carts *cart.Store) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("", cartControllers.GetCart(carts))
		cartGroup.POST("", cartControllers.AddToCart(db, carts))
		cartGroup.DELETE("/:product_id", cartControllers.RemoveFromCart(carts))
		cartGroup.DELETE("", cartControllers.ClearCart(carts))
		cartGroup.POST("/checkout", cartControllers.Checkout(db, carts))
	}
}
