package routes

import (
	usercontroller "github.com/DAQEM/fakestore/controllers/user"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", usercontroller.Signup(deps.Actions))
		authGroup.POST("/login", usercontroller.Login(deps.Actions))
		authGroup.POST("/logout", usercontroller.Logout(deps.Actions))
	}
}
