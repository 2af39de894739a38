package productcontroller

import (
	"net/http"

	"github.com/axis-silicon/storefront-api/models"
	"github.com/axis-silicon/storefront-api/store"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductInput struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name" binding:"required"`
	Category           string   `json:"category" binding:"required"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discount_percentage"`
	Stock              int      `json:"stock"`
	Images             []string `json:"images"`
	Description        string   `json:"description"`
	Details            string   `json:"details"`
	Features           []string `json:"features"`
}

func (in ProductInput) toModel() models.Product {
	return models.Product{
		ID:                 in.ID,
		Name:               in.Name,
		Category:           in.Category,
		Price:              in.Price,
		DiscountPercentage: in.DiscountPercentage,
		Stock:              in.Stock,
		Images:             in.Images,
		Description:        in.Description,
		Details:            in.Details,
		Features:           in.Features,
	}
}

// CreateProduct adds one product to the catalog. An id is generated when the
// payload carries none.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be non-negative"})
			return
		}
		if input.DiscountPercentage < 0 || input.DiscountPercentage > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Discount must be between 0 and 100"})
			return
		}

		product := input.toModel()
		if product.ID == "" {
			product.ID = models.NewProductID()
		}

		if err := store.SaveProducts(db, []models.Product{product}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
