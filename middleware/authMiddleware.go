package middleware

import (
	"net/http"

	"go-cafe-ordering/helpers"

	"github.com/gin-gonic/gin"
)

// Authentication guards staff-only routes. The contract endpoints stay open;
// only the routes registered with this middleware require a token header.
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken := c.Request.Header.Get("token")
		if clientToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No Authorization token provided"})
			c.Abort()
			return
		}
		claims, err := helpers.ValidateToken(clientToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		c.Set("username", claims.Username)
		c.Set("uid", claims.Uid)
		c.Next()
	}
}
