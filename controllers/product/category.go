package productcontroller

import (
	"net/http"

	"github.com/axis-silicon/storefront-api/models"
	"github.com/axis-silicon/storefront-api/store"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryInput struct {
	Title string `json:"title" binding:"required"`
	Image string `json:"image"`
}

// CreateCategory derives the slug id and anchor url from the title. A title
// that slugs to an existing id is rejected by the primary key.
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category := models.NewCategory(input.Title, input.Image)
		if category.ID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title must contain at least one word"})
			return
		}

		if err := store.AddCategory(db, category); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.GetCategories(db))
	}
}

// DeleteCategory removes the category only. Its products keep their category
// slug and simply stop appearing in category rollups.
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		if err := store.DeleteCategory(db, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
