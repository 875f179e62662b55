package routes

import (
	productcontroller "github.com/DAQEM/fakestore/controllers/product"
	"github.com/DAQEM/fakestore/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers every catalog-mutating endpoint. All of them
// require the API key.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	// Resource-style product mutations live beside the public reads.
	r.PUT("/products/:id", middleware.ValidateAPIKey, productcontroller.ReplaceProduct(deps.Catalog))
	r.DELETE("/products/:id", middleware.ValidateAPIKey, productcontroller.DeleteProduct(deps.Catalog))

	// Management-form endpoints go through the action layer.
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProductAction(deps.Actions))
			productAdmin.PUT("/:id", productcontroller.UpdateProductAction(deps.Actions))
			productAdmin.DELETE("/:id", productcontroller.DeleteProductAction(deps.Actions))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(deps.Catalog))
		}
	}
}
