package opsController

import (
	"net/http"

	"github.com/axis-silicon/storefront-api/store"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SeedDatabase fills empty category and product tables with the default
// dataset. Safe to call repeatedly; non-empty tables are left alone.
func SeedDatabase(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.SeedDatabase(db); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Seeding failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Database seeded"})
	}
}
