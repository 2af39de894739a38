package advisorController

import (
	"log"
	"net/http"

	"github.com/axis-silicon/storefront-api/advisor"
	"github.com/gin-gonic/gin"
)

type AdviceRequest struct {
	Description string `json:"description" binding:"required"`
}

// GetProjectAdvice forwards the project description to the advisory service
// and returns its structured recommendation. Failures surface as 502; there
// is no retry.
func GetProjectAdvice(client *advisor.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdviceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		advice, err := client.ProjectAdvice(c.Request.Context(), req.Description)
		if err != nil {
			log.Printf("❌ Advisory call failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Advisory service unavailable"})
			return
		}
		c.JSON(http.StatusOK, advice)
	}
}
