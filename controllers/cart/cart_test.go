package cartControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/axis-silicon/storefront-api/cart"
	"github.com/axis-silicon/storefront-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withSession(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", id)
		c.Next()
	}
}

func TestClearCartDropsTheSessionCart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	carts := cart.NewStore()
	carts.Get("guest_a").Add(models.Product{ID: "AX-CORE-X2", Name: "Core-X2", Price: 58000})
	carts.Get("guest_b").Add(models.Product{ID: "BS-IR-900", Name: "Bio-Sync", Price: 32500})

	r := gin.New()
	r.DELETE("/cart", withSession("guest_a"), ClearCart(carts))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cart", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, carts.Get("guest_a").Len())
	assert.Equal(t, 1, carts.Get("guest_b").Len())
}

func TestRemoveFromCartTakesAllCopies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	carts := cart.NewStore()
	sessionCart := carts.Get("guest_c")
	sessionCart.Add(models.Product{ID: "AX-CORE-X2", Name: "Core-X2", Price: 58000})
	sessionCart.Add(models.Product{ID: "AX-CORE-X2", Name: "Core-X2", Price: 58000})
	sessionCart.Add(models.Product{ID: "OL-5G-NODE", Name: "Optic-Link", Price: 18900})

	r := gin.New()
	r.DELETE("/cart/:product_id", withSession("guest_c"), RemoveFromCart(carts))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cart/AX-CORE-X2", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var payload struct {
		Items []models.Product `json:"items"`
		Total float64          `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.Len(t, payload.Items, 1)
	assert.Equal(t, "OL-5G-NODE", payload.Items[0].ID)
	assert.Equal(t, 18900.0, payload.Total)
}

func TestCartEndpointsRequireASession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	carts := cart.NewStore()

	r := gin.New()
	r.GET("/cart", GetCart(carts))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
