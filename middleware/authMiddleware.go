package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-order/helpers"
	"smart-order/models"
)

// Authentication validates the token header and stashes the session claims
// on the request context for handlers downstream.
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken := c.Request.Header.Get("token")
		if clientToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no token provided"})
			c.Abort()
			return
		}
		claims, err := helpers.ValidateToken(clientToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		c.Set("uid", claims.Uid)
		c.Set("name", claims.Name)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireCapability gates a route group on the static role allow-list.
// Must run after Authentication.
func RequireCapability(capability Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get("role")
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
			c.Abort()
			return
		}
		if !HasCapability(role.(models.UserRole), capability) {
			c.JSON(http.StatusForbidden, gin.H{"error": "role not allowed"})
			c.Abort()
			return
		}
		c.Next()
	}
}
