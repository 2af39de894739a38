// Package store is the persistence layer for the catalog and the order
// ledger. Reads fall back to the bundled default dataset so the storefront
// stays browsable when the database is unreachable or freshly created.
package store

import (
	"log"

	"github.com/axis-silicon/storefront-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetProducts returns the full catalog ordered by id. On a query error or an
// empty table it returns the bundled default catalog instead.
func GetProducts(db *gorm.DB) []models.Product {
	var products []models.Product
	if err := db.Order("id ASC").Find(&products).Error; err != nil {
		log.Printf("❌ Failed to fetch products, serving defaults: %v", err)
		return DefaultProducts()
	}
	if len(products) == 0 {
		return DefaultProducts()
	}
	return products
}

// GetProductByID looks up a single product. No default fallback here: a miss
// is a miss.
func GetProductByID(db *gorm.DB, id string) (*models.Product, error) {
	var product models.Product
	if err := db.First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// SaveProducts upserts the given products by id.
func SaveProducts(db *gorm.DB, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&products).Error
	if err != nil {
		log.Printf("❌ Failed to save products: %v", err)
	}
	return err
}

func DeleteProduct(db *gorm.DB, id string) error {
	if err := db.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
		log.Printf("❌ Failed to delete product %s: %v", id, err)
		return err
	}
	return nil
}
