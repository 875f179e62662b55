package auth

import (
	"errors"
	"time"

	"github.com/DAQEM/fakestore/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity resolved from a bearer token: the opaque
// "current user" the rest of the system consumes.
type Claims struct {
	UserID string
	Email  string
	Role   string
}

// Token signs a 24h HS256 token carrying the user's id, email and role.
func (p *Provider) Token(u models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"role":    u.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

// Verify parses and validates a token and returns the claims it carries.
func (p *Provider) Verify(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, errors.New("invalid or expired token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("invalid token claims")
	}

	userID, _ := mapClaims["user_id"].(string)
	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)
	if userID == "" {
		return Claims{}, errors.New("token carries no user id")
	}

	return Claims{UserID: userID, Email: email, Role: role}, nil
}
