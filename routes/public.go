package routes

import (
	productcontroller "github.com/DAQEM/fakestore/controllers/product"
	"github.com/gin-gonic/gin"
)

// SetupPublicRoutes registers the read-only catalog endpoints.
func SetupPublicRoutes(r *gin.Engine, deps Deps) {
	r.GET("/products", productcontroller.GetProducts(deps.Catalog))
	r.GET("/products/:id", productcontroller.GetProductByID(deps.Catalog))
	r.GET("/products/category/:category", productcontroller.GetProductsByCategory(deps.Catalog))
	r.GET("/categories", productcontroller.GetCategories(deps.Catalog))
}
