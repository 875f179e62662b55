package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DAQEM/fakestore/store"
	"github.com/gin-gonic/gin"
)

// GetProductByID returns a single product.
// URL param: /products/:id
func GetProductByID(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		product, err := catalog.Get(uint(id))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
