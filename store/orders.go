package store

import (
	"log"

	"github.com/axis-silicon/storefront-api/models"
	"gorm.io/gorm"
)

// GetOrders returns the ledger newest-first. On a query error it returns an
// empty slice; there is no default dataset for orders.
func GetOrders(db *gorm.DB) []models.Order {
	var orders []models.Order
	if err := db.Order("created_at DESC").Find(&orders).Error; err != nil {
		log.Printf("❌ Failed to fetch orders: %v", err)
		return []models.Order{}
	}
	return orders
}

// SaveOrders inserts the batch in one call, then decrements the stock of each
// referenced product by one, clamped at zero. If the insert fails the
// decrement loop is skipped entirely. The insert and the decrements are NOT
// one transaction: a failure mid-loop leaves earlier decrements applied.
func SaveOrders(db *gorm.DB, orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}
	if err := db.Create(&orders).Error; err != nil {
		log.Printf("❌ Failed to save order batch: %v", err)
		return err
	}

	for _, order := range orders {
		var product models.Product
		if err := db.First(&product, "id = ?", order.ProductID).Error; err != nil {
			log.Printf("❌ Stock decrement skipped, product %s not found: %v", order.ProductID, err)
			continue
		}
		stock := product.Stock - 1
		if stock < 0 {
			stock = 0
		}
		if err := db.Model(&models.Product{}).Where("id = ?", order.ProductID).
			Update("stock", stock).Error; err != nil {
			log.Printf("❌ Failed to decrement stock for %s: %v", order.ProductID, err)
		}
	}
	return nil
}

// UpdateOrderStatus overwrites the status unconditionally. Any known status is
// accepted regardless of the order's current one, backward moves included.
func UpdateOrderStatus(db *gorm.DB, orderID string, status models.OrderStatus) error {
	result := db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", status)
	if result.Error != nil {
		log.Printf("❌ Failed to update status of order %s: %v", orderID, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
