package usercontroller

import (
	"net/http"
	"strings"

	"github.com/DAQEM/fakestore/actions"
	"github.com/gin-gonic/gin"
)

type signupInput struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name"`
	Password string `json:"password" binding:"required"`
}

type loginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup registers an account and returns a session token.
// POST /auth/signup
func Signup(acts *actions.Actions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input signupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		session, res := acts.Signup(input.Email, input.Name, input.Password)
		if !res.OK {
			c.JSON(http.StatusBadRequest, gin.H{"message": res.Message})
			return
		}
		c.JSON(http.StatusCreated, session)
	}
}

// Login checks credentials and returns a session token.
// POST /auth/login
func Login(acts *actions.Actions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input loginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		session, res := acts.Login(input.Email, input.Password)
		if !res.OK {
			c.JSON(http.StatusUnauthorized, gin.H{"message": res.Message})
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// Logout ends the session. The caller gets no failure signal; problems are
// logged server-side only.
// POST /auth/logout
func Logout(acts *actions.Actions) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		acts.Logout(token)
		c.Status(http.StatusNoContent)
	}
}
