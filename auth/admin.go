package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin checks the submitted credentials against the provisioned
// ADMIN_EMAIL / ADMIN_PASSWORD_HASH pair and issues an admin token. The hash
// is bcrypt; no credential ever lives in the source.
func AdminLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		adminEmail := os.Getenv("ADMIN_EMAIL")
		passwordHash := os.Getenv("ADMIN_PASSWORD_HASH")
		if adminEmail == "" || passwordHash == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Admin login is not configured"})
			return
		}

		if req.Email != adminEmail ||
			bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		token, err := issueToken(req.Email, "admin", 24*time.Hour)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "role": "admin"})
	}
}

func issueToken(subject, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": subject,
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
