package routes

import (
	"github.com/axis-silicon/storefront-api/advisor"
	"github.com/axis-silicon/storefront-api/cart"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up the auth, shop, cart,
// admin, and ops route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, carts *cart.Store, advisorClient *advisor.Client) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r)

	// Public storefront + advisory routes
	SetupShopRoutes(r, db, advisorClient)

	// Cart routes (guest JWT)
	SetupCartRoutes(r, db, carts)

	// Admin routes (admin JWT)
	SetupAdminRoutes(r, db)

	// Ops routes (API key)
	SetupOpsRoutes(r, db)
}
