package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	BuildTime   string    `json:"build_time"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// DefaultBuildInfo contains default build information
var DefaultBuildInfo = BuildInfo{
	Version:   "development",
	GitCommit: "unknown",
	BuildTime: "unknown",
	GoVersion: runtime.Version(),
}

// ServiceInfo describes the running service on /health
type ServiceInfo struct {
	Name        string
	Environment string
	AuthStore   string
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	buildInfo := DefaultBuildInfo
	buildInfo.ServiceName = serviceName

	if version := os.Getenv("VERSION"); version != "" {
		buildInfo.Version = version
	}
	if gitCommit := os.Getenv("GIT_COMMIT"); gitCommit != "" {
		buildInfo.GitCommit = gitCommit
	}
	if buildTime := os.Getenv("BUILD_TIME"); buildTime != "" {
		buildInfo.BuildTime = buildTime
	}

	return func(c echo.Context) error {
		info := buildInfo
		info.Hostname = hostname
		info.ServerTime = time.Now()

		return c.JSON(http.StatusOK, info)
	}
}

// NewStatusHandler reports liveness plus the bootstrap state. It always answers 200.
func NewStatusHandler(info ServiceInfo, state *State) echo.HandlerFunc {
	return func(c echo.Context) error {
		snap := state.Snapshot()
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":        "ok",
			"service":       info.Name,
			"environment":   info.Environment,
			"authStore":     info.AuthStore,
			"ready":         snap.Ready,
			"degraded":      !snap.Ready,
			"startupError":  snap.StartupError,
			"lastCheckedAt": snap.LastCheckedAt,
			"lastReadyAt":   snap.LastReadyAt,
		})
	}
}

// NewReadyHandler answers 503 until bootstrap succeeded and every dependency responds
func NewReadyHandler(state *State, healthService *HealthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		snap := state.Snapshot()
		if !snap.Ready {
			message := snap.StartupError
			if message == "" {
				message = "Database unavailable"
			}
			return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
				"error":  message,
				"status": "degraded",
			})
		}

		if healthService != nil {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
			defer cancel()

			deps, healthy := healthService.CheckAll(ctx)
			if !healthy {
				return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
					"error":        "Dependency unavailable",
					"status":       "degraded",
					"dependencies": deps,
				})
			}
		}

		return c.JSON(http.StatusOK, map[string]interface{}{"status": "ready"})
	}
}

// RegisterHealthEndpoints registers the health check endpoints on g
func RegisterHealthEndpoints(g *echo.Group, info ServiceInfo, state *State, healthService *HealthService) {
	g.GET("/ping", NewPingHandler(info.Name))
	g.GET("/health", NewStatusHandler(info, state))
	g.GET("/health/ready", NewReadyHandler(state, healthService))
}
