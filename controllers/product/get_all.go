package productcontroller

import (
	"net/http"

	"github.com/DAQEM/fakestore/store"
	"github.com/gin-gonic/gin"
)

// GetProducts returns the whole catalog.
func GetProducts(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
