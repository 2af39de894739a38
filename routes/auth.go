package routes

import (
	"github.com/axis-silicon/storefront-api/auth"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine) {
	authGroup := r.Group("/auth")
	{
		// Guest session for cart use
		authGroup.POST("/guest", auth.CreateGuestSession())

		// Admin console login
		authGroup.POST("/admin-login", auth.AdminLogin())
	}
}
