package productcontroller

import (
	"net/http"

	"github.com/axis-silicon/storefront-api/store"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProducts returns the catalog snapshot, defaults included when the
// database is unreachable or empty.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.GetProducts(db))
	}
}

// GetProductByID returns the detail payload: the product plus its spec sheet
// parsed out of the free-text details field.
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		product, err := store.GetProductByID(db, id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"product":       product,
			"primary_image": product.PrimaryImage(),
			"specs":         product.Specs(),
			"extra_details": product.ExtraDetails(),
		})
	}
}
