package productcontroller

import (
	"net/http"

	"github.com/DAQEM/fakestore/store"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// ExportProductsToExcel streams the whole catalog as an .xlsx download for
// the management page.
func ExportProductsToExcel(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Title", "Description", "Category", "Image", "Price", "RatingRate", "RatingCount"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Title)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Image)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.RatingRate)
			row.AddCell().SetValue(p.RatingCount)
		}

		c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}
