package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/masarify/authsvc/internal/pkg/health"
)

// RequireReady answers 503 until the backing store finished bootstrapping
func RequireReady(state *health.State) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			snap := state.Snapshot()
			if snap.Ready {
				return next(c)
			}

			message := snap.StartupError
			if message == "" {
				message = "Backend is not ready yet"
			}
			return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
				"success": false,
				"error":   message,
				"code":    http.StatusServiceUnavailable,
				"status":  "degraded",
			})
		}
	}
}
