package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// POST /auth/guest
//
// CreateGuestSession hands out a guest id and a 24h token. Sessions only key
// the in-memory cart store, so nothing is persisted; a restart simply forgets
// every cart.
func CreateGuestSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := "guest_" + uuid.NewString()

		token, err := issueToken(guestID, "guest", 24*time.Hour)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"guest_id":   guestID,
			"token":      token,
			"expires_at": time.Now().Add(24 * time.Hour),
		})
	}
}
