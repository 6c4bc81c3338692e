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

// EnsureSeedUser makes sure a test login exists for mobile.
// An existing user keeps its password unless overwrite is set.
func (u *AuthUC) EnsureSeedUser(ctx context.Context, mobile, password string, overwrite bool) (models.SeedResult, error) {
	if err := requireMobile(mobile); err != nil {
		return "", err
	}
	if password == "" {
		return "", apperror.Validation("Seed password is required")
	}

	digest, err := u.hasher.Hash(password)
	if err != nil {
		return "", err
	}

	var result models.SeedResult
	err = u.repo.Atomic(ctx, func(repo auth.AuthRepo) error {
		existing, err := repo.GetUserByMobile(ctx, mobile)
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}

		now := u.clock.Now()
		if existing == nil {
			if err := repo.CreateUser(ctx, &models.User{
				Mobile:       mobile,
				PasswordHash: digest,
				CreatedAt:    now,
				UpdatedAt:    now,
			}); err != nil {
				return fmt.Errorf("failed to create seed user: %w", err)
			}
			result = models.SeedCreated
			return nil
		}

		if !overwrite {
			result = models.SeedExisting
			return nil
		}

		if _, err := repo.UpdatePassword(ctx, mobile, digest, now); err != nil {
			return fmt.Errorf("failed to update seed user: %w", err)
		}
		result = models.SeedUpdated
		return nil
	})
	if err != nil {
		return "", err
	}

	logger.InfoCtx(ctx, "Seed user ensured",
		logger.String("mobile", utils.MaskMobile(mobile)),
		logger.String("result", string(result)))

	return result, nil
}
