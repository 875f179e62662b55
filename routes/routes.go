package routes

import (
	"github.com/DAQEM/fakestore/actions"
	"github.com/DAQEM/fakestore/auth"
	"github.com/DAQEM/fakestore/store"
	"github.com/gin-gonic/gin"
)

// Deps carries the explicitly constructed components the route groups wire
// handlers to. Nothing here reaches for globals.
type Deps struct {
	Catalog *store.Catalog
	Carts   *store.Carts
	Auth    *auth.Provider
	Actions *actions.Actions
}

// SetupRoutes is the single entry-point that wires up the public, auth,
// user, and admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public catalog reads (no middleware)
	SetupPublicRoutes(r, deps)

	// Auth endpoints (no middleware)
	SetupAuthRoutes(r, deps)

	// User cart routes (JWT-protected)
	SetupUserRoutes(r, deps)

	// Catalog mutations (API-key-protected)
	SetupAdminRoutes(r, deps)
}
