package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is a private type for context keys; it prevents collisions with
// keys set by other packages.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
)

// GetUserIDFromContext retrieves the authenticated user ID set by the auth
// middleware. It returns the ID and whether it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(userIDKey); v != nil {
		if userID, ok := v.(string); ok {
			return userID, true
		}
	}
	return "", false
}

// WithUserID returns a context carrying the authenticated user ID. Exposed
// for tests that exercise handlers without the auth middleware.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
