package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Hitsaa/socail-blogging-backend/internal/auth"
)

// ContextUsernameKey is where the middleware stores the authenticated
// caller's username for handlers to read.
const ContextUsernameKey = "username"

// AuthMiddleware validates the bearer token and injects the username into
// the request context. Handlers pass that username into the services
// explicitly; nothing below this layer reads ambient auth state.
func AuthMiddleware(jwt *auth.JWTProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}

		username, err := jwt.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ContextUsernameKey, username)
		c.Next()
	}
}

// CurrentUsername reads the authenticated username set by AuthMiddleware.
func CurrentUsername(c *gin.Context) (string, bool) {
	raw, exists := c.Get(ContextUsernameKey)
	if !exists {
		return "", false
	}
	username, ok := raw.(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}
