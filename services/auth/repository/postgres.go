package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/masarify/authsvc/internal/pkg/apperror"
	"github.com/masarify/authsvc/internal/pkg/database"
	"github.com/masarify/authsvc/internal/pkg/models"
	"github.com/masarify/authsvc/services/auth"
)

// PostgresRepo implements auth.AuthRepo and auth.RateLedger on PostgreSQL
type PostgresRepo struct {
	db  *sqlx.DB
	ext sqlx.ExtContext
	tx  *sqlx.Tx
}

// NewPostgresRepo creates a new Postgres-backed auth repository
func NewPostgresRepo(db *sqlx.DB) *PostgresRepo {
	return &PostgresRepo{
		db:  db,
		ext: db,
	}
}

// lockClause makes reads inside a unit of work hold the row until commit
func (r *PostgresRepo) lockClause() string {
	if r.tx != nil {
		return " FOR UPDATE"
	}
	return ""
}

// Atomic runs fn in a read-committed transaction. Nested calls join the outer transaction.
func (r *PostgresRepo) Atomic(ctx context.Context, fn func(repo auth.AuthRepo) error) error {
	return r.inTx(ctx, func(tx *PostgresRepo) error {
		return fn(tx)
	})
}

func (r *PostgresRepo) inTx(ctx context.Context, fn func(tx *PostgresRepo) error) error {
	if r.tx != nil {
		return fn(r)
	}

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&PostgresRepo{db: r.db, ext: tx, tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Ping verifies the database answers a trivial query
func (r *PostgresRepo) Ping(ctx context.Context) error {
	if _, err := r.ext.ExecContext(ctx, "SELECT 1"); err != nil {
		return fmt.Errorf("failed to ping auth store: %w", err)
	}
	return nil
}

// GetUserByMobile retrieves a user by mobile number
func (r *PostgresRepo) GetUserByMobile(ctx context.Context, mobile string) (*models.User, error) {
	query := `
		SELECT mobile, password_hash, created_at, updated_at
		FROM users
		WHERE mobile = $1` + r.lockClause()

	var user models.User
	if err := sqlx.GetContext(ctx, r.ext, &user, query, mobile); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// CreateUser inserts a new user
func (r *PostgresRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (mobile, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.ext.ExecContext(ctx, query, user.Mobile, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return apperror.AlreadyExists("User already exists")
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// UpdatePassword replaces the password digest and returns the updated row
func (r *PostgresRepo) UpdatePassword(ctx context.Context, mobile, passwordHash string, updatedAt time.Time) (*models.User, error) {
	query := `
		UPDATE users
		SET password_hash = $2, updated_at = $3
		WHERE mobile = $1
		RETURNING mobile, password_hash, created_at, updated_at
	`

	var user models.User
	if err := sqlx.GetContext(ctx, r.ext, &user, query, mobile, passwordHash, updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update password: %w", err)
	}
	return &user, nil
}

// CreateOtpRequest persists a new OTP challenge
func (r *PostgresRepo) CreateOtpRequest(ctx context.Context, req *models.OtpRequest) error {
	query := `
		INSERT INTO otp_requests (request_id, mobile, purpose, code, expires_at, verify_attempts, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.ext.ExecContext(ctx, query,
		req.RequestID,
		req.Mobile,
		string(req.Purpose),
		req.Code,
		req.ExpiresAt,
		req.VerifyAttempts,
		req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create OTP request: %w", err)
	}
	return nil
}

// GetOtpRequest retrieves an OTP challenge by request id
func (r *PostgresRepo) GetOtpRequest(ctx context.Context, requestID string) (*models.OtpRequest, error) {
	query := `
		SELECT request_id, mobile, purpose, code, expires_at, verify_attempts, created_at
		FROM otp_requests
		WHERE request_id = $1` + r.lockClause()

	var req models.OtpRequest
	if err := sqlx.GetContext(ctx, r.ext, &req, query, requestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get OTP request: %w", err)
	}
	return &req, nil
}

// IncrementOtpAttempts records a failed verification
func (r *PostgresRepo) IncrementOtpAttempts(ctx context.Context, requestID string) error {
	query := `UPDATE otp_requests SET verify_attempts = verify_attempts + 1 WHERE request_id = $1`

	if _, err := r.ext.ExecContext(ctx, query, requestID); err != nil {
		return fmt.Errorf("failed to increment OTP attempts: %w", err)
	}
	return nil
}

// DeleteOtpRequest removes an OTP challenge
func (r *PostgresRepo) DeleteOtpRequest(ctx context.Context, requestID string) error {
	if _, err := r.ext.ExecContext(ctx, `DELETE FROM otp_requests WHERE request_id = $1`, requestID); err != nil {
		return fmt.Errorf("failed to delete OTP request: %w", err)
	}
	return nil
}

// CreateVerificationToken persists a new verification token
func (r *PostgresRepo) CreateVerificationToken(ctx context.Context, token *models.VerificationToken) error {
	query := `
		INSERT INTO verification_tokens (token, mobile, purpose, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.ext.ExecContext(ctx, query, token.Token, token.Mobile, string(token.Purpose), token.ExpiresAt, token.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create verification token: %w", err)
	}
	return nil
}

// GetVerificationToken retrieves a verification token
func (r *PostgresRepo) GetVerificationToken(ctx context.Context, token string) (*models.VerificationToken, error) {
	query := `
		SELECT token, mobile, purpose, expires_at, created_at
		FROM verification_tokens
		WHERE token = $1` + r.lockClause()

	var record models.VerificationToken
	if err := sqlx.GetContext(ctx, r.ext, &record, query, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get verification token: %w", err)
	}
	return &record, nil
}

// DeleteVerificationToken removes a token and reports whether it was still present
func (r *PostgresRepo) DeleteVerificationToken(ctx context.Context, token string) (bool, error) {
	result, err := r.ext.ExecContext(ctx, `DELETE FROM verification_tokens WHERE token = $1`, token)
	if err != nil {
		return false, fmt.Errorf("failed to delete verification token: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return affected > 0, nil
}

// Admit prunes, counts and records rate events for mobile under a per-mobile advisory lock
func (r *PostgresRepo) Admit(ctx context.Context, mobile string, now time.Time, window time.Duration, max int) (bool, error) {
	admitted := false
	cutoff := now.Add(-window)

	err := r.inTx(ctx, func(tx *PostgresRepo) error {
		if _, err := tx.ext.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, mobile); err != nil {
			return fmt.Errorf("failed to lock rate events: %w", err)
		}

		if _, err := tx.ext.ExecContext(ctx, `DELETE FROM otp_rate_events WHERE mobile = $1 AND requested_at < $2`, mobile, cutoff); err != nil {
			return fmt.Errorf("failed to prune rate events: %w", err)
		}

		var count int
		if err := sqlx.GetContext(ctx, tx.ext, &count, `SELECT COUNT(*) FROM otp_rate_events WHERE mobile = $1`, mobile); err != nil {
			return fmt.Errorf("failed to count rate events: %w", err)
		}
		if count >= max {
			return nil
		}

		if _, err := tx.ext.ExecContext(ctx, `INSERT INTO otp_rate_events (mobile, requested_at) VALUES ($1, $2)`, mobile, now); err != nil {
			return fmt.Errorf("failed to record rate event: %w", err)
		}
		admitted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return admitted, nil
}
