package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/masarify/authsvc/internal/pkg/database"
	"github.com/masarify/authsvc/internal/pkg/health"
	"github.com/masarify/authsvc/internal/pkg/logger"
	"github.com/masarify/authsvc/internal/pkg/models"
	"github.com/masarify/authsvc/internal/pkg/retry"
	"github.com/masarify/authsvc/internal/utils"
	"github.com/masarify/authsvc/services/auth"
)

// bootstrapper prepares the auth store after the HTTP server is listening
type bootstrapper struct {
	cfg    *models.Config
	repo   auth.AuthRepo
	authUC auth.AuthUC
	db     *sqlx.DB
	state  *health.State

	// retrier wraps the first ping; nil means a single attempt
	retrier *retry.Retrier
}

func newStoreRetrier(cfg models.DatabaseConfig) *retry.Retrier {
	rc := retry.DefaultConfig()
	rc.MaxRetries = cfg.ConnectRetries
	if cfg.ConnectRetryDelay > 0 {
		rc.BaseDelay = cfg.ConnectRetryDelay
	}
	rc.Retryable = database.IsTransient
	return retry.New("auth store ping", rc)
}

// Run pings and migrates the database when there is one, seeds the test user when enabled,
// and marks the service ready. Any failure leaves the service degraded with a readable message.
func (b *bootstrapper) Run(ctx context.Context) error {
	if err := b.prepare(ctx); err != nil {
		message := database.DescribeStartupError(err, b.cfg.App.PrimaryEnvFile)
		b.state.SetDegraded(message)
		logger.Error("Store bootstrap failed",
			logger.String("reason", message),
			logger.ErrorField(err))
		return err
	}

	b.state.SetReady()
	if b.cfg.AuthStore.UsesDatabase() {
		logger.Info("Database bootstrap completed")
	} else {
		logger.Info("Auth store initialized in memory mode")
	}
	return nil
}

func (b *bootstrapper) prepare(ctx context.Context) error {
	if b.db != nil {
		if err := b.ping(ctx); err != nil {
			return err
		}
		if err := database.Migrate(ctx, b.db); err != nil {
			return err
		}
	}

	if !b.cfg.Seed.Enabled {
		return nil
	}

	result, err := b.authUC.EnsureSeedUser(ctx, b.cfg.Seed.Mobile, b.cfg.Seed.Password, b.cfg.Seed.Overwrite)
	if err != nil {
		return fmt.Errorf("failed to seed test user: %w", err)
	}
	logger.Info("Seed user ready",
		logger.String("result", string(result)),
		logger.String("mobile", utils.MaskMobile(b.cfg.Seed.Mobile)),
		logger.Bool("overwrite", b.cfg.Seed.Overwrite))
	return nil
}

func (b *bootstrapper) ping(ctx context.Context) error {
	if b.retrier == nil {
		return b.repo.Ping(ctx)
	}
	return b.retrier.Execute(ctx, b.repo.Ping)
}
