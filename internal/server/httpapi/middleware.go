package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/auth"
)

// Context keys under which the gate stores the verified identity.
const (
	ctxUserIDKey = "userID"
	ctxRoleKey   = "userRole"
)

const unauthorizedMsg = "Unauthorized"

// AuthRequired is the authorization gate. A missing header is rejected
// before the token parser is ever invoked; a present header must have
// the "<scheme> <token>" shape, where the scheme word itself is not
// checked. Every verification failure — malformed, expired, or bad
// signature — collapses into the same 401 so clients cannot probe
// which check failed.
func AuthRequired(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			newErrorResponse(c, http.StatusUnauthorized, unauthorizedMsg)

			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 {
			newErrorResponse(c, http.StatusUnauthorized, unauthorizedMsg)

			return
		}

		claims, err := auth.ParseToken(parts[1], jwtSecret)
		if err != nil {
			newErrorResponse(c, http.StatusUnauthorized, unauthorizedMsg)

			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxRoleKey, claims.Role)

		c.Next()
	}
}
