package productcontroller

import (
	"net/http"

	"github.com/axis-silicon/storefront-api/models"
	"github.com/axis-silicon/storefront-api/store"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateProduct upserts a full product record under the path id. The admin
// dashboard sends the complete product back, so this is a replace, not a
// field-level patch.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if _, err := store.GetProductByID(db, id); err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.DiscountPercentage < 0 || input.DiscountPercentage > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Discount must be between 0 and 100"})
			return
		}

		product := input.toModel()
		product.ID = id

		if err := store.SaveProducts(db, []models.Product{product}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
