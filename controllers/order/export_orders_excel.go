package orderControllers

import (
	"net/http"
	"time"

	"github.com/axis-silicon/storefront-api/store"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportOrdersToExcel streams the full ledger as an .xlsx workbook for the
// back office, newest orders first.
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := store.GetOrders(db)

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sheet"})
			return
		}

		header := sheet.AddRow()
		for _, title := range []string{
			"id", "customer_name", "phone", "wilaya", "delivery_type",
			"product_id", "product_name", "amount", "status", "created_at",
		} {
			header.AddCell().SetValue(title)
		}

		for _, o := range orders {
			row := sheet.AddRow()
			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.CustomerName)
			row.AddCell().SetValue(o.Phone)
			row.AddCell().SetValue(o.Wilaya)
			row.AddCell().SetValue(string(o.DeliveryType))
			row.AddCell().SetValue(o.ProductID)
			row.AddCell().SetValue(o.ProductName)
			row.AddCell().SetValue(o.Amount)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.CreatedAt.UTC().Format(time.RFC3339))
		}

		c.Header("Content-Disposition", `attachment; filename="orders.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write workbook"})
		}
	}
}
