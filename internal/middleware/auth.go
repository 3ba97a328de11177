// internal/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/javajoker/shopsmart-backend/internal/utils"
)

// Identity is the caller resolved from a bearer token. It is attached to the
// request context exactly once, by AuthRequired or OptionalAuth; handlers
// read it back with IdentityFrom and treat its absence as anonymous.
type Identity struct {
	UserID   uuid.UUID
	Username string
}

const identityKey = "identity"

// AuthRequired rejects the request unless a valid bearer token is present.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := resolveIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// OptionalAuth resolves the caller when possible and proceeds as anonymous
// on any failure, including expired or malformed tokens. Anonymous browsing
// must never hard-fail because of a stale credential.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity, ok := resolveIdentity(c); ok {
			c.Set(identityKey, identity)
		}
		c.Next()
	}
}

// IdentityFrom returns the resolved caller, if any.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	if v, exists := c.Get(identityKey); exists {
		if identity, ok := v.(Identity); ok {
			return identity, true
		}
	}
	return Identity{}, false
}

func resolveIdentity(c *gin.Context) (Identity, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return Identity{}, false
	}

	// Extract token from "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return Identity{}, false
	}

	claims, err := utils.ValidateJWT(parts[1])
	if err != nil {
		return Identity{}, false
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return Identity{}, false
	}

	return Identity{UserID: userID, Username: claims.Username}, true
}
