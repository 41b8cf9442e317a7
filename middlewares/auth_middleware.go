package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ShakirChaya0/IPP-Prototype/utils"
	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
	ContextToken  = "token"
)

func bearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", errors.New("token not found")
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return "", errors.New("invalid token format")
	}
	return strings.TrimPrefix(header, "Bearer "), nil
}

// AuthMiddleware rejects requests without a valid session token and stores
// the caller's id and role in the context.
func AuthMiddleware(tokens *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := bearerToken(c)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		claims, err := tokens.ParseToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextToken, tokenString)
		c.Next()
	}
}

// OptionalAuthMiddleware identifies the caller when a valid token is present
// and lets anonymous requests through untouched.
func OptionalAuthMiddleware(tokens *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, err := bearerToken(c); err == nil {
			if claims, err := tokens.ParseToken(tokenString); err == nil {
				c.Set(ContextUserID, claims.UserID)
				c.Set(ContextRole, claims.Role)
				c.Set(ContextToken, tokenString)
			}
		}
		c.Next()
	}
}
