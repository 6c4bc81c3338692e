package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/masarify/authsvc/internal/pkg/health"
	"github.com/masarify/authsvc/internal/pkg/middleware"
	"github.com/masarify/authsvc/internal/pkg/models"
	"github.com/masarify/authsvc/services/auth/handler/http"
)

// Handler coordinates the HTTP handlers of the auth service
type Handler struct {
	authHandler   *http.AuthHandler
	sessions      middleware.SessionVerifier
	state         *health.State
	healthService *health.HealthService
	cfg           *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	sessions middleware.SessionVerifier,
	state *health.State,
	healthService *health.HealthService,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:   authHandler,
		sessions:      sessions,
		state:         state,
		healthService: healthService,
		cfg:           cfg,
	}
}

// RegisterRoutes registers the health and auth routes under /api
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	health.RegisterHealthEndpoints(api, health.ServiceInfo{
		Name:        h.cfg.App.Name,
		Environment: h.cfg.App.Environment,
		AuthStore:   h.cfg.AuthStore.Mode,
	}, h.state, h.healthService)

	// Auth routes answer 503 until the store is bootstrapped
	authGroup := api.Group("/auth", middleware.RequireReady(h.state))
	authGroup.POST("/request-otp", h.authHandler.RequestOTP)
	authGroup.POST("/verify-otp", h.authHandler.VerifyOTP)
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.POST("/reset-password", h.authHandler.ResetPassword)

	protected := authGroup.Group("", middleware.BearerAuthMiddleware(h.sessions))
	protected.POST("/change-password", h.authHandler.ChangePassword)
	protected.GET("/me", h.authHandler.Me)
}
