package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/axis-silicon/storefront-api/models"
	"github.com/axis-silicon/storefront-api/store"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

var productSheetHeader = []string{
	"id", "name", "category", "price", "discount_percentage", "stock",
	"images", "description", "details", "features",
}

// ExportProductsToExcel streams the catalog as an .xlsx workbook. Multi-value
// columns (images, features) are joined with ";".
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := store.GetProducts(db)

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sheet"})
			return
		}

		header := sheet.AddRow()
		for _, title := range productSheetHeader {
			header.AddCell().SetValue(title)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.DiscountPercentage)
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(strings.Join(p.Images, ";"))
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Details)
			row.AddCell().SetValue(strings.Join(p.Features, ";"))
		}

		c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write workbook"})
		}
	}
}

// ImportProductsFromExcel upserts products from an uploaded workbook laid out
// like the export. Rows with an empty id get a generated one.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		upload, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open uploaded file"})
			return
		}
		defer upload.Close()

		workbook, err := xlsx.OpenReaderAt(upload, fileHeader.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Excel file"})
			return
		}
		if len(workbook.Sheets) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Workbook has no sheets"})
			return
		}

		var products []models.Product
		for i, row := range workbook.Sheets[0].Rows {
			if i == 0 || len(row.Cells) < len(productSheetHeader) {
				continue
			}
			name := strings.TrimSpace(row.Cells[1].String())
			if name == "" {
				continue
			}

			price, err := strconv.ParseFloat(strings.TrimSpace(row.Cells[3].String()), 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price in row " + strconv.Itoa(i+1)})
				return
			}
			discount, err := strconv.ParseFloat(strings.TrimSpace(row.Cells[4].String()), 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount in row " + strconv.Itoa(i+1)})
				return
			}
			stock, err := strconv.Atoi(strings.TrimSpace(row.Cells[5].String()))
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock in row " + strconv.Itoa(i+1)})
				return
			}

			id := strings.TrimSpace(row.Cells[0].String())
			if id == "" {
				id = models.NewProductID()
			}

			products = append(products, models.Product{
				ID:                 id,
				Name:               name,
				Category:           strings.TrimSpace(row.Cells[2].String()),
				Price:              price,
				DiscountPercentage: discount,
				Stock:              stock,
				Images:             splitList(row.Cells[6].String()),
				Description:        row.Cells[7].String(),
				Details:            row.Cells[8].String(),
				Features:           splitList(row.Cells[9].String()),
			})
		}

		if len(products) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No product rows found"})
			return
		}
		if err := store.SaveProducts(db, products); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Products imported", "count": len(products)})
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
