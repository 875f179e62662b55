package middleware

import (
	"net/http"
	"strings"

	"github.com/DAQEM/fakestore/auth"
	"github.com/gin-gonic/gin"
)

// RequireUser resolves the current user from the Authorization header and
// stores the identity in the request context. Requests without a valid
// token never reach the handler.
func RequireUser(provider *auth.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		claims, err := provider.Verify(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// UserID reads the identity RequireUser stored; empty when unauthenticated.
func UserID(c *gin.Context) string {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
