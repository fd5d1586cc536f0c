package middleware

import (
	"net/http"

	"creatorhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures the authenticated user has the given platform role.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if role.(string) != requiredRole {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CreatorOnly guards the profile lifecycle endpoints.
func CreatorOnly() gin.HandlerFunc {
	return RequireRole("creator")
}

// AdminOnly guards moderation endpoints.
func AdminOnly() gin.HandlerFunc {
	return RequireRole("admin")
}
