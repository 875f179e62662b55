package cartcontroller

import (
	"net/http"
	"strconv"

	"github.com/DAQEM/fakestore/actions"
	"github.com/DAQEM/fakestore/middleware"
	"github.com/DAQEM/fakestore/store"
	"github.com/gin-gonic/gin"
)

type addItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

type setQuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart returns the current user's cart items with product details.
// GET /user/cart
func GetCart(carts *store.Carts) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := carts.Get(middleware.UserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart.Items)
	}
}

// GetCartCount returns the summed item quantities, for the header badge.
// GET /user/cart/count
func GetCartCount(carts *store.Carts) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := carts.Count(middleware.UserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}

// AddItem puts one unit of a product into the cart.
// POST /user/cart/items
func AddItem(acts *actions.Actions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input addItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		if res := acts.AddItem(middleware.UserID(c), input.ProductID); !res.OK {
			c.JSON(http.StatusBadRequest, gin.H{"message": res.Message})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// SetQuantity changes an item's quantity; zero or less removes the item.
// PUT /user/cart/items/:id
func SetQuantity(acts *actions.Actions) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid item ID"})
			return
		}

		var input setQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		if res := acts.SetQuantity(middleware.UserID(c), uint(itemID), *input.Quantity); !res.OK {
			c.JSON(http.StatusBadRequest, gin.H{"message": res.Message})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// RemoveItem deletes an item from the cart.
// DELETE /user/cart/items/:id
func RemoveItem(acts *actions.Actions) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid item ID"})
			return
		}

		if res := acts.RemoveItem(middleware.UserID(c), uint(itemID)); !res.OK {
			c.JSON(http.StatusBadRequest, gin.H{"message": res.Message})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
