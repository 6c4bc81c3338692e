package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema is applied in order; every statement is idempotent
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		mobile TEXT PRIMARY KEY,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS otp_requests (
		request_id UUID PRIMARY KEY,
		mobile TEXT NOT NULL,
		purpose TEXT NOT NULL CHECK (purpose IN ('register', 'reset')),
		code TEXT NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL,
		verify_attempts INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS verification_tokens (
		token UUID PRIMARY KEY,
		mobile TEXT NOT NULL,
		purpose TEXT NOT NULL CHECK (purpose IN ('register', 'reset')),
		expires_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS otp_rate_events (
		id BIGSERIAL PRIMARY KEY,
		mobile TEXT NOT NULL,
		requested_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_otp_rate_events_mobile_time ON otp_rate_events (mobile, requested_at)`,
	`CREATE INDEX IF NOT EXISTS idx_otp_requests_mobile ON otp_requests (mobile)`,
	`CREATE INDEX IF NOT EXISTS idx_verification_tokens_mobile ON verification_tokens (mobile)`,
}

// Migrate creates the auth tables and indexes when they are missing
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply migration step %d: %w", i+1, err)
		}
	}
	return nil
}
