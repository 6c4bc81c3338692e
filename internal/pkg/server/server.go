package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/masarify/authsvc/internal/pkg/logger"
	"github.com/masarify/authsvc/internal/pkg/models"
)

const defaultShutdownTimeout = 10 * time.Second

// GracefulServer runs an Echo server until SIGINT/SIGTERM and then drains it
type GracefulServer struct {
	echo            *echo.Echo
	addr            string
	shutdownTimeout time.Duration
	components      *ShutdownManager
	errCh           chan error
}

// NewGracefulServer creates a server bound to cfg.Host:cfg.Port. components may be nil.
func NewGracefulServer(e *echo.Echo, cfg models.ServerConfig, components *ShutdownManager) *GracefulServer {
	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	if components == nil {
		components = NewShutdownManager()
	}
	return &GracefulServer{
		echo:            e,
		addr:            fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		shutdownTimeout: timeout,
		components:      components,
		errCh:           make(chan error, 1),
	}
}

// Addr returns the configured listen address
func (s *GracefulServer) Addr() string {
	return s.addr
}

// Start begins serving in the background and returns immediately
func (s *GracefulServer) Start() {
	go func() {
		logger.Info("Starting HTTP server", logger.String("address", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.errCh <- err
		}
	}()
}

// Wait blocks until ctx is done, a termination signal arrives or the listener fails,
// then shuts the server and registered components down.
func (s *GracefulServer) Wait(ctx context.Context) error {
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var serveErr error
	select {
	case <-sigCtx.Done():
		logger.Info("Received shutdown signal")
	case serveErr = <-s.errCh:
		logger.Error("HTTP server stopped unexpectedly", logger.ErrorField(serveErr))
	}

	if err := s.Shutdown(); err != nil {
		return errors.Join(serveErr, err)
	}
	return serveErr
}

// Shutdown drains in-flight requests and then releases the registered components
func (s *GracefulServer) Shutdown() error {
	logger.Info("Shutting down server gracefully", logger.Duration("timeout", s.shutdownTimeout))

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	var errs []error
	if err := s.echo.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", logger.ErrorField(err))
		errs = append(errs, fmt.Errorf("failed to shutdown http server: %w", err))
	}
	if err := s.components.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}

	logger.Info("Server shutdown completed")
	return errors.Join(errs...)
}

type component struct {
	name string
	fn   func(context.Context) error
}

// ShutdownManager releases registered components in reverse registration order
type ShutdownManager struct {
	components []component
}

// NewShutdownManager creates an empty shutdown manager
func NewShutdownManager() *ShutdownManager {
	return &ShutdownManager{}
}

// Register adds a cleanup function
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.components = append(sm.components, component{name: name, fn: fn})
}

// Shutdown runs every cleanup function, continuing past failures
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down components", logger.Int("components", len(sm.components)))

	var errs []error
	for i := len(sm.components) - 1; i >= 0; i-- {
		c := sm.components[i]
		if err := c.fn(ctx); err != nil {
			logger.Error("Component shutdown failed",
				logger.String("component", c.name),
				logger.ErrorField(err))
			errs = append(errs, fmt.Errorf("failed to close %s: %w", c.name, err))
		}
	}
	return errors.Join(errs...)
}
