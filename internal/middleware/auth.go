package middleware

import (
	"net/http"
	"strings"

	"garage-desk/internal/auth"

	"github.com/gin-gonic/gin"
)

// RequireAuth gates a route group behind a valid bearer token.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Please authenticate."})
			return
		}

		claims, err := auth.ParseToken(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Please authenticate."})
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}
