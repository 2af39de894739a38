package store

import (
	"log"

	"github.com/axis-silicon/storefront-api/models"
	"gorm.io/gorm"
)

// GetCategories returns all categories ordered by title, falling back to the
// bundled defaults on a query error or an empty table.
func GetCategories(db *gorm.DB) []models.Category {
	var categories []models.Category
	if err := db.Order("title ASC").Find(&categories).Error; err != nil {
		log.Printf("❌ Failed to fetch categories, serving defaults: %v", err)
		return DefaultCategories()
	}
	if len(categories) == 0 {
		return DefaultCategories()
	}
	return categories
}

func AddCategory(db *gorm.DB, category models.Category) error {
	if err := db.Create(&category).Error; err != nil {
		log.Printf("❌ Failed to add category %s: %v", category.ID, err)
		return err
	}
	return nil
}

// DeleteCategory removes a category. Products referencing it are left
// untouched; they simply drop out of the category stock buckets.
func DeleteCategory(db *gorm.DB, id string) error {
	if err := db.Delete(&models.Category{}, "id = ?", id).Error; err != nil {
		log.Printf("❌ Failed to delete category %s: %v", id, err)
		return err
	}
	return nil
}
