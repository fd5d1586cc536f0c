package middleware

import (
	"net/http"
	"os"
	"strings"

	"creatorhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// InternalAuth guards service-to-service endpoints (moderation, sync jobs).
// INTERNAL_TOKEN_HASH holds a bcrypt hash of the shared token so the secret
// itself never sits in the environment.
func InternalAuth() gin.HandlerFunc {
	hash := strings.TrimSpace(os.Getenv("INTERNAL_TOKEN_HASH"))

	return func(c *gin.Context) {
		if hash == "" {
			response.Error(c, http.StatusServiceUnavailable, "INTERNAL_AUTH_DISABLED", "Internal endpoints are not configured")
			c.Abort()
			return
		}

		token := strings.TrimSpace(c.GetHeader("X-Internal-Token"))
		if token == "" {
			response.Error(c, http.StatusUnauthorized, "AUTH_INVALID", "Missing internal token")
			c.Abort()
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)); err != nil {
			response.Error(c, http.StatusUnauthorized, "AUTH_INVALID", "Invalid internal token")
			c.Abort()
			return
		}

		c.Next()
	}
}
