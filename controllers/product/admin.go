package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/DAQEM/fakestore/actions"
	"github.com/gin-gonic/gin"
)

// The management form endpoints go through the action layer: failures come
// back as an inline message, never as a raw store error.

// CreateProductAction handles POST /admin/products.
func CreateProductAction(acts *actions.Actions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form actions.ProductForm
		if err := c.ShouldBind(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid form: " + err.Error()})
			return
		}

		if res := acts.CreateProduct(form); !res.OK {
			c.JSON(http.StatusBadRequest, gin.H{"message": res.Message})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"redirect": "/admin"})
	}
}

// UpdateProductAction handles PUT /admin/products/:id.
func UpdateProductAction(acts *actions.Actions) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
			return
		}

		var form actions.ProductForm
		if err := c.ShouldBind(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid form: " + err.Error()})
			return
		}

		if res := acts.UpdateProduct(uint(id), form); !res.OK {
			c.JSON(http.StatusBadRequest, gin.H{"message": res.Message})
			return
		}
		c.JSON(http.StatusOK, gin.H{"redirect": "/admin"})
	}
}

// DeleteProductAction handles DELETE /admin/products/:id. The action is
// fire-and-forget: the caller always gets 204 and failures only show up in
// the server log.
func DeleteProductAction(acts *actions.Actions) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
			return
		}

		acts.DeleteProduct(uint(id))
		c.Status(http.StatusNoContent)
	}
}
