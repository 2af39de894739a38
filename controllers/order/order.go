package orderControllers

import (
	"net/http"

	"github.com/axis-silicon/storefront-api/models"
	"github.com/axis-silicon/storefront-api/store"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GetAllOrders returns the ledger newest-first.
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.GetOrders(db))
	}
}

// UpdateOrderStatus overwrites the status field. Any of the four known values
// is accepted whatever the current status is; the pending -> confirmed ->
// shipped -> delivered sequence is convention, not a constraint.
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status, err := models.MapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := store.UpdateOrderStatus(db, orderID, status); err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		BroadcastStatusChange(orderID, status)
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}
