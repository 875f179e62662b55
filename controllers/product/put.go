package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DAQEM/fakestore/store"
	"github.com/gin-gonic/gin"
)

type productBody struct {
	Title       *string  `json:"title"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
}

// ReplaceProduct overwrites the submitted fields of an existing product.
// PUT /products/:id with a JSON product body (minus id).
func ReplaceProduct(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var body productBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product body: " + err.Error()})
			return
		}

		product, err := catalog.Update(uint(id), store.ProductFields{
			Title:       body.Title,
			Price:       body.Price,
			Description: body.Description,
			Category:    body.Category,
			Image:       body.Image,
		})
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
