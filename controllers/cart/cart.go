package cartControllers

import (
	"net/http"
	"time"

	"github.com/axis-silicon/storefront-api/cart"
	"github.com/axis-silicon/storefront-api/checkout"
	orderControllers "github.com/axis-silicon/storefront-api/controllers/order"
	"github.com/axis-silicon/storefront-api/store"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

func sessionID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	id, ok := userIDVal.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id, true
}

// GetCart returns the session's cart lines and running total.
func GetCart(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionID(c)
		if !ok {
			return
		}
		sessionCart := carts.Get(id)
		c.JSON(http.StatusOK, gin.H{
			"items": sessionCart.Items(),
			"total": sessionCart.Total(),
		})
	}
}

// AddToCart snapshots the product into the cart. Adding the same product
// again appends a second line; one line is one unit. Out-of-stock products
// are rejected here, not inside the cart itself.
func AddToCart(db *gorm.DB, carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionID(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := store.GetProductByID(db, input.ProductID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}
		if product.Stock <= 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Product is out of stock"})
			return
		}

		sessionCart := carts.Get(id)
		sessionCart.Add(*product)
		c.JSON(http.StatusCreated, gin.H{
			"items": sessionCart.Items(),
			"total": sessionCart.Total(),
		})
	}
}

// RemoveFromCart drops every line matching the product id, duplicates
// included.
func RemoveFromCart(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionID(c)
		if !ok {
			return
		}
		sessionCart := carts.Get(id)
		sessionCart.Remove(c.Param("product_id"))
		c.JSON(http.StatusOK, gin.H{
			"items": sessionCart.Items(),
			"total": sessionCart.Total(),
		})
	}
}

// ClearCart tears the session's cart down entirely; the next Get starts fresh.
func ClearCart(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionID(c)
		if !ok {
			return
		}
		carts.Drop(id)
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// Checkout builds one pending order per cart line from the delivery form and
// persists the batch in a single call. The cart is cleared only after the
// batch is accepted.
func Checkout(db *gorm.DB, carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionID(c)
		if !ok {
			return
		}

		var form checkout.DeliveryForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sessionCart := carts.Get(id)
		orders, err := checkout.BuildBatch(sessionCart.Items(), form, time.Now())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := store.SaveOrders(db, orders); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place orders"})
			return
		}

		sessionCart.Clear()
		orderControllers.BroadcastNewOrders(orders)
		c.JSON(http.StatusCreated, gin.H{
			"message": "Orders placed successfully",
			"orders":  orders,
		})
	}
}
