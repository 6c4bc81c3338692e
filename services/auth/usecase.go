package auth

import (
	"context"

	"github.com/masarify/authsvc/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/masarify/authsvc/services/auth AuthUC

// AuthUC represents the identity workflow usecase interface
type AuthUC interface {
	// handle OTP
	EnforceOtpRateLimit(ctx context.Context, mobile string) error
	CreateOtpRequest(ctx context.Context, mobile string, purpose models.OtpPurpose) (*models.OtpIssued, error)
	RequestOTP(ctx context.Context, mobile string, purpose models.OtpPurpose) (*models.OtpIssued, error)
	VerifyOtpRequest(ctx context.Context, requestID, mobile string, purpose models.OtpPurpose, code string) (*models.OtpVerified, error)

	// handle credentials
	Register(ctx context.Context, mobile, verificationToken, password, confirmPassword string) (*models.AuthSession, error)
	Login(ctx context.Context, mobile, password string) (*models.AuthSession, error)
	ResetPassword(ctx context.Context, mobile, verificationToken, password, confirmPassword string) (*models.AuthSession, error)
	ChangePassword(ctx context.Context, mobile, oldPassword, newPassword, confirmPassword string) error

	// handle bootstrap
	EnsureSeedUser(ctx context.Context, mobile, password string, overwrite bool) (models.SeedResult, error)
}
