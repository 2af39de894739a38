package analyticsController

import (
	"net/http"
	"time"

	"github.com/axis-silicon/storefront-api/analytics"
	"github.com/axis-silicon/storefront-api/store"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const trendDays = 7

// GetDashboard recomputes every dashboard metric from the current ledger and
// catalog snapshots. Chart scale values carry the divide-by-zero floor so the
// frontend can normalize bar heights directly.
func GetDashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := store.GetOrders(db)
		products := store.GetProducts(db)
		categories := store.GetCategories(db)

		trend := analytics.RevenueTrend(orders, trendDays, time.Now())
		trendValues := make([]float64, len(trend))
		for i, p := range trend {
			trendValues[i] = p.Amount
		}

		stock := analytics.StockByCategory(products, categories)
		stockValues := make([]float64, len(stock))
		for i, b := range stock {
			stockValues[i] = float64(b.Value)
		}

		c.JSON(http.StatusOK, gin.H{
			"total_revenue":     analytics.TotalRevenue(orders),
			"pending_count":     analytics.PendingCount(orders),
			"revenue_trend":     trend,
			"revenue_scale":     analytics.ChartScale(trendValues),
			"stock_by_category": stock,
			"stock_scale":       analytics.ChartScale(stockValues),
		})
	}
}
