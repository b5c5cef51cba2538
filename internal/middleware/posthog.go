package middleware

import (
	"net/http"
	"strings"

	"github.com/finanzapp/finanzas-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip are not worth tracking.
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// PosthogMiddleware tracks successful authenticated API calls as analytics
// events named after the route.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		// "/api/v1/movements" -> "api_v1_movements"
		eventName := strings.TrimPrefix(c.FullPath(), "/")
		eventName = strings.ReplaceAll(eventName, "/", "_")
		if eventName == "" {
			return
		}

		posthogClient.Enqueue(userID, eventName, map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		})
	}
}
