package productcontroller

import (
	"net/http"
	"net/url"

	"github.com/DAQEM/fakestore/store"
	"github.com/gin-gonic/gin"
)

// GetProductsByCategory returns every product in one category. The category
// segment is percent-decoded before matching ("men%27s%20clothing" and
// "men's clothing" select the same set); an unknown category is an empty
// array, not an error.
func GetProductsByCategory(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Param("category")
		if decoded, err := url.PathUnescape(category); err == nil {
			category = decoded
		}

		products, err := catalog.ListByCategory(category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetCategories returns the deduplicated category names currently in use.
func GetCategories(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		names, err := catalog.ListCategories()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, names)
	}
}
