package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/masarify/authsvc/internal/pkg/apperror"
	"github.com/masarify/authsvc/internal/pkg/logger"
	"github.com/masarify/authsvc/internal/pkg/models"
	"github.com/masarify/authsvc/internal/utils"
	"github.com/masarify/authsvc/services/auth"
)

// EnforceOtpRateLimit admits at most MaxRequestsPerWindow OTP requests per mobile in the trailing window
func (u *AuthUC) EnforceOtpRateLimit(ctx context.Context, mobile string) error {
	if err := requireMobile(mobile); err != nil {
		return err
	}

	admitted, err := u.rates.Admit(ctx, mobile, u.clock.Now(), u.cfg.OTP.RateLimitWindow, u.cfg.OTP.MaxRequestsPerWindow)
	if err != nil {
		return fmt.Errorf("failed to check otp rate limit: %w", err)
	}
	if !admitted {
		logger.WarnCtx(ctx, "OTP rate limit exceeded",
			logger.String("mobile", utils.MaskMobile(mobile)),
			logger.Int("max_requests", u.cfg.OTP.MaxRequestsPerWindow),
			logger.Duration("window", u.cfg.OTP.RateLimitWindow))
		return apperror.RateLimited(msgRateLimited)
	}
	return nil
}

// CreateOtpRequest issues a new challenge for mobile and purpose
func (u *AuthUC) CreateOtpRequest(ctx context.Context, mobile string, purpose models.OtpPurpose) (*models.OtpIssued, error) {
	if err := requireMobile(mobile); err != nil {
		return nil, err
	}
	if !purpose.Valid() {
		return nil, apperror.Validation(msgInvalidPurpose)
	}

	code, err := u.generateCode(otpCodeLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate otp code: %w", err)
	}

	now := u.clock.Now()
	record := &models.OtpRequest{
		RequestID:      uuid.NewString(),
		Mobile:         mobile,
		Purpose:        purpose,
		Code:           code,
		ExpiresAt:      now.Add(u.cfg.OTP.TTL),
		VerifyAttempts: 0,
		CreatedAt:      now,
	}

	if err := u.repo.CreateOtpRequest(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create otp request: %w", err)
	}

	issued := &models.OtpIssued{
		RequestID:        record.RequestID,
		ExpiresInSeconds: int64(u.cfg.OTP.TTL / time.Second),
	}

	// The raw code never leaves the process in staging or production.
	if !u.cfg.App.IsProductionLike() {
		issued.DebugOTP = code
		logger.DebugCtx(ctx, "Generated OTP",
			logger.String("mobile", mobile),
			logger.String("purpose", string(purpose)),
			logger.String("otp_code", code))
	}

	logger.InfoCtx(ctx, "OTP request created",
		logger.String("request_id", record.RequestID),
		logger.String("mobile", utils.MaskMobile(mobile)),
		logger.String("purpose", string(purpose)))

	return issued, nil
}

// RequestOTP applies the rate limit and then issues a challenge
func (u *AuthUC) RequestOTP(ctx context.Context, mobile string, purpose models.OtpPurpose) (*models.OtpIssued, error) {
	if !purpose.Valid() {
		return nil, apperror.Validation(msgInvalidPurpose)
	}
	if err := u.EnforceOtpRateLimit(ctx, mobile); err != nil {
		return nil, err
	}
	return u.CreateOtpRequest(ctx, mobile, purpose)
}

// VerifyOtpRequest checks a submitted code. Identity is compared before expiry and attempts so
// a caller holding someone else's request id learns nothing about its state.
func (u *AuthUC) VerifyOtpRequest(ctx context.Context, requestID, mobile string, purpose models.OtpPurpose, code string) (*models.OtpVerified, error) {
	if _, err := uuid.Parse(requestID); err != nil {
		return nil, apperror.NotFound(msgOtpNotFound)
	}

	var (
		verified *models.OtpVerified
		failure  error
	)

	err := u.repo.Atomic(ctx, func(repo auth.AuthRepo) error {
		record, err := repo.GetOtpRequest(ctx, requestID)
		if err != nil {
			return fmt.Errorf("failed to get otp request: %w", err)
		}
		if record == nil {
			return settle(apperror.NotFound(msgOtpNotFound), &failure)
		}
		if record.Mobile != mobile || record.Purpose != purpose {
			return settle(apperror.Mismatch(msgOtpMismatch), &failure)
		}

		now := u.clock.Now()
		if record.ExpiresAt.Before(now) {
			if err := repo.DeleteOtpRequest(ctx, requestID); err != nil {
				return fmt.Errorf("failed to delete expired otp request: %w", err)
			}
			return settle(apperror.Expired(msgOtpExpired), &failure)
		}

		if record.VerifyAttempts >= u.cfg.OTP.MaxVerifyAttempts {
			if err := repo.DeleteOtpRequest(ctx, requestID); err != nil {
				return fmt.Errorf("failed to delete exhausted otp request: %w", err)
			}
			return settle(apperror.AttemptsExceeded(msgOtpAttemptsExceeded), &failure)
		}

		if subtle.ConstantTimeCompare([]byte(record.Code), []byte(code)) != 1 {
			if err := repo.IncrementOtpAttempts(ctx, requestID); err != nil {
				return fmt.Errorf("failed to increment otp attempts: %w", err)
			}
			return settle(apperror.InvalidCode(msgOtpInvalid), &failure)
		}

		if err := repo.DeleteOtpRequest(ctx, requestID); err != nil {
			return fmt.Errorf("failed to delete verified otp request: %w", err)
		}

		token := &models.VerificationToken{
			Token:     uuid.NewString(),
			Mobile:    mobile,
			Purpose:   purpose,
			ExpiresAt: now.Add(u.cfg.OTP.VerificationTokenTTL),
			CreatedAt: now,
		}
		if err := repo.CreateVerificationToken(ctx, token); err != nil {
			return fmt.Errorf("failed to create verification token: %w", err)
		}

		verified = &models.OtpVerified{
			VerificationToken: token.Token,
			ExpiresInSeconds:  int64(u.cfg.OTP.VerificationTokenTTL / time.Second),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if failure != nil {
		logger.InfoCtx(ctx, "OTP verification rejected",
			logger.String("request_id", requestID),
			logger.String("reason", string(apperror.KindOf(failure))))
		return nil, failure
	}

	return verified, nil
}

// consumeVerificationToken deletes token if it belongs to mobile and purpose.
// It runs inside the caller's unit of work so the deletion commits together with the credential change.
func (u *AuthUC) consumeVerificationToken(ctx context.Context, repo auth.AuthRepo, token, mobile string, purpose models.OtpPurpose) error {
	if _, err := uuid.Parse(token); err != nil {
		return apperror.NotFound(msgTokenNotFound)
	}

	record, err := repo.GetVerificationToken(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to get verification token: %w", err)
	}
	if record == nil {
		return apperror.NotFound(msgTokenNotFound)
	}

	if record.ExpiresAt.Before(u.clock.Now()) {
		if _, err := repo.DeleteVerificationToken(ctx, token); err != nil {
			return fmt.Errorf("failed to delete expired verification token: %w", err)
		}
		return apperror.Expired(msgTokenExpired)
	}

	if record.Mobile != mobile || record.Purpose != purpose {
		return apperror.Mismatch(msgTokenMismatch)
	}

	deleted, err := repo.DeleteVerificationToken(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to consume verification token: %w", err)
	}
	if !deleted {
		return apperror.NotFound(msgTokenNotFound)
	}
	return nil
}
