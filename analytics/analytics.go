// Package analytics derives dashboard metrics from ledger and catalog
// snapshots. Everything is recomputed from scratch on each call; there is no
// incremental state.
package analytics

import (
	"time"

	"github.com/axis-silicon/storefront-api/models"
)

// TotalRevenue sums the amount of all delivered orders.
func TotalRevenue(orders []models.Order) float64 {
	var total float64
	for _, o := range orders {
		if o.Status == models.OrderStatusDelivered {
			total += o.Amount
		}
	}
	return total
}

// PendingCount counts orders in any state other than delivered.
func PendingCount(orders []models.Order) int {
	count := 0
	for _, o := range orders {
		if o.Status != models.OrderStatusDelivered {
			count++
		}
	}
	return count
}

// TrendPoint is one calendar day's delivered revenue.
type TrendPoint struct {
	Date   string  `json:"date"` // ISO date, e.g. 2026-08-29
	Amount float64 `json:"amount"`
}

// RevenueTrend buckets delivered revenue per calendar day (UTC) for the last
// `days` days including today, oldest first. Orders match a bucket by the
// date prefix of created_at.
func RevenueTrend(orders []models.Order, days int, now time.Time) []TrendPoint {
	points := make([]TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := now.UTC().AddDate(0, 0, -i).Format("2006-01-02")
		var dayTotal float64
		for _, o := range orders {
			if o.Status == models.OrderStatusDelivered &&
				o.CreatedAt.UTC().Format("2006-01-02") == date {
				dayTotal += o.Amount
			}
		}
		points = append(points, TrendPoint{Date: date, Amount: dayTotal})
	}
	return points
}

// CategoryStock is one category's summed product stock.
type CategoryStock struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// StockByCategory sums stock per category. Products whose category matches no
// known category id fall out of every bucket.
func StockByCategory(products []models.Product, categories []models.Category) []CategoryStock {
	buckets := make([]CategoryStock, 0, len(categories))
	for _, cat := range categories {
		stock := 0
		for _, p := range products {
			if p.Category == cat.ID {
				stock += p.Stock
			}
		}
		buckets = append(buckets, CategoryStock{Label: cat.Title, Value: stock})
	}
	return buckets
}

// ChartScale returns the maximum of the values with a floor of 1, so bar
// heights never divide by zero when every value is zero.
func ChartScale(values []float64) float64 {
	max := 1.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	return max
}
