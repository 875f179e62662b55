package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DAQEM/fakestore/store"
	"github.com/gin-gonic/gin"
)

// DeleteProduct removes a product and answers with an empty body.
// DELETE /products/:id
func DeleteProduct(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		if err := catalog.Delete(uint(id)); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			}
			return
		}
		c.Status(http.StatusNoContent)
	}
}
