package usecase

import (
	"context"
	"fmt"

	"github.com/masarify/authsvc/internal/pkg/apperror"
	"github.com/masarify/authsvc/internal/pkg/logger"
	"github.com/masarify/authsvc/internal/pkg/models"
	"github.com/masarify/authsvc/internal/utils"
	"github.com/masarify/authsvc/services/auth"
)

// dummyPassword is hashed once and compared against when a login names an unknown mobile
const dummyPassword = "masarify-unknown-user-placeholder"

// Register creates credentials for mobile after a completed register OTP challenge
func (u *AuthUC) Register(ctx context.Context, mobile, verificationToken, password, confirmPassword string) (*models.AuthSession, error) {
	if err := requireMobile(mobile); err != nil {
		return nil, err
	}
	if password != confirmPassword {
		return nil, apperror.Validation(msgPasswordMismatch)
	}

	digest, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	user := &models.User{
		Mobile:       mobile,
		PasswordHash: digest,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The token is consumed first so a replayed token reports NotFound. An existing user
	// aborts the unit, which puts the token back.
	var failure error
	err = u.repo.Atomic(ctx, func(repo auth.AuthRepo) error {
		if err := u.consumeVerificationToken(ctx, repo, verificationToken, mobile, models.PurposeRegister); err != nil {
			return settle(err, &failure)
		}

		existing, err := repo.GetUserByMobile(ctx, mobile)
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}
		if existing != nil {
			return apperror.AlreadyExists(msgUserExists)
		}
		return repo.CreateUser(ctx, user)
	})
	if err != nil {
		if apperror.Is(err, apperror.KindAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	if failure != nil {
		return nil, failure
	}

	logger.InfoCtx(ctx, "User registered", logger.String("mobile", utils.MaskMobile(mobile)))

	createdAt := user.CreatedAt
	return u.newSession(mobile, models.UserSummary{Mobile: mobile, CreatedAt: &createdAt})
}

// Login exchanges a mobile and password for a session
func (u *AuthUC) Login(ctx context.Context, mobile, password string) (*models.AuthSession, error) {
	if err := requireMobile(mobile); err != nil {
		return nil, err
	}

	user, err := u.repo.GetUserByMobile(ctx, mobile)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	digest := u.unknownUserDigest()
	if user != nil {
		digest = user.PasswordHash
	}

	matched := false
	if digest != "" {
		matched, err = u.hasher.Compare(password, digest)
		if err != nil {
			return nil, fmt.Errorf("failed to compare password: %w", err)
		}
	}
	if user == nil || !matched {
		logger.InfoCtx(ctx, "Login rejected", logger.String("mobile", utils.MaskMobile(mobile)))
		return nil, apperror.InvalidCredentials(msgInvalidCredentials)
	}

	return u.newSession(mobile, models.UserSummary{Mobile: mobile, CreatedAt: &user.CreatedAt})
}

// ResetPassword replaces the password of mobile after a completed reset OTP challenge
func (u *AuthUC) ResetPassword(ctx context.Context, mobile, verificationToken, password, confirmPassword string) (*models.AuthSession, error) {
	if err := requireMobile(mobile); err != nil {
		return nil, err
	}
	if password != confirmPassword {
		return nil, apperror.Validation(msgPasswordMismatch)
	}

	existing, err := u.repo.GetUserByMobile(ctx, mobile)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existing == nil {
		return nil, apperror.NotFound(msgUserNotFound)
	}

	digest, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	var (
		updated *models.User
		failure error
	)
	err = u.repo.Atomic(ctx, func(repo auth.AuthRepo) error {
		if err := u.consumeVerificationToken(ctx, repo, verificationToken, mobile, models.PurposeReset); err != nil {
			return settle(err, &failure)
		}
		user, err := repo.UpdatePassword(ctx, mobile, digest, u.clock.Now())
		if err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}
		updated = user
		if updated == nil {
			return apperror.NotFound(msgUserNotFound)
		}
		return nil
	})
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to reset password: %w", err)
	}
	if failure != nil {
		return nil, failure
	}

	logger.InfoCtx(ctx, "Password reset", logger.String("mobile", utils.MaskMobile(mobile)))

	updatedAt := updated.UpdatedAt
	return u.newSession(mobile, models.UserSummary{Mobile: mobile, UpdatedAt: &updatedAt})
}

// ChangePassword replaces the password of an already authenticated mobile
func (u *AuthUC) ChangePassword(ctx context.Context, mobile, oldPassword, newPassword, confirmPassword string) error {
	if err := requireMobile(mobile); err != nil {
		return err
	}
	if newPassword != confirmPassword {
		return apperror.Validation(msgPasswordMismatch)
	}

	user, err := u.repo.GetUserByMobile(ctx, mobile)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return apperror.NotFound(msgUserNotFound)
	}

	matched, err := u.hasher.Compare(oldPassword, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("failed to compare password: %w", err)
	}
	if !matched {
		return apperror.InvalidCredentials(msgOldPasswordIncorrect)
	}

	digest, err := u.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	// The stored digest must still be the one the old password was checked against.
	err = u.repo.Atomic(ctx, func(repo auth.AuthRepo) error {
		current, err := repo.GetUserByMobile(ctx, mobile)
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}
		if current == nil {
			return apperror.NotFound(msgUserNotFound)
		}
		if current.PasswordHash != user.PasswordHash {
			return apperror.InvalidCredentials(msgOldPasswordIncorrect)
		}
		if _, err := repo.UpdatePassword(ctx, mobile, digest, u.clock.Now()); err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}
		return nil
	})
	if err != nil {
		if apperror.KindOf(err) != apperror.KindInternal {
			return err
		}
		return fmt.Errorf("failed to change password: %w", err)
	}

	logger.InfoCtx(ctx, "Password changed", logger.String("mobile", utils.MaskMobile(mobile)))
	return nil
}

func (u *AuthUC) newSession(mobile string, summary models.UserSummary) (*models.AuthSession, error) {
	token, expiresAt, err := u.sessions.IssueSession(mobile)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session: %w", err)
	}
	return &models.AuthSession{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        summary,
	}, nil
}

// unknownUserDigest keeps the unknown-mobile login path as slow as a real comparison
func (u *AuthUC) unknownUserDigest() string {
	u.dummyOnce.Do(func() {
		digest, err := u.hasher.Hash(dummyPassword)
		if err != nil {
			logger.Warn("Failed to prepare placeholder digest", logger.Err(err))
			return
		}
		u.dummyDigest = digest
	})
	return u.dummyDigest
}
