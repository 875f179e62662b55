package routes

import (
	cartcontroller "github.com/DAQEM/fakestore/controllers/cart"
	"github.com/DAQEM/fakestore/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes registers the JWT-protected "/user/*" endpoints.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.RequireUser(deps.Auth))
	{
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartcontroller.GetCart(deps.Carts))
			cartGroup.GET("/count", cartcontroller.GetCartCount(deps.Carts))
			cartGroup.POST("/items", cartcontroller.AddItem(deps.Actions))
			cartGroup.PUT("/items/:id", cartcontroller.SetQuantity(deps.Actions))
			cartGroup.DELETE("/items/:id", cartcontroller.RemoveItem(deps.Actions))
		}
	}
}
