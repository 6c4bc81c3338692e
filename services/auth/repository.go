package auth

import (
	"context"
	"time"

	"github.com/masarify/authsvc/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/masarify/authsvc/services/auth AuthRepo,RateLedger

// CredentialStore persists user records keyed by mobile number
type CredentialStore interface {
	// GetUserByMobile returns (nil, nil) when no user exists
	GetUserByMobile(ctx context.Context, mobile string) (*models.User, error)
	// CreateUser fails with an AlreadyExists error when the mobile is taken
	CreateUser(ctx context.Context, user *models.User) error
	// UpdatePassword returns (nil, nil) when no user exists
	UpdatePassword(ctx context.Context, mobile, passwordHash string, updatedAt time.Time) (*models.User, error)
}

// OtpLedger persists outstanding OTP challenges
type OtpLedger interface {
	CreateOtpRequest(ctx context.Context, req *models.OtpRequest) error
	// GetOtpRequest returns (nil, nil) when the request does not exist
	GetOtpRequest(ctx context.Context, requestID string) (*models.OtpRequest, error)
	IncrementOtpAttempts(ctx context.Context, requestID string) error
	DeleteOtpRequest(ctx context.Context, requestID string) error
}

// TokenLedger persists single-use verification tokens
type TokenLedger interface {
	CreateVerificationToken(ctx context.Context, token *models.VerificationToken) error
	// GetVerificationToken returns (nil, nil) when the token does not exist
	GetVerificationToken(ctx context.Context, token string) (*models.VerificationToken, error)
	// DeleteVerificationToken reports whether this call removed the token
	DeleteVerificationToken(ctx context.Context, token string) (bool, error)
}

// RateLedger admits OTP issuance events within a sliding window.
// Admit prunes events older than now-window, rejects when max events remain,
// and otherwise records an event at now. The whole step is atomic per mobile.
type RateLedger interface {
	Admit(ctx context.Context, mobile string, now time.Time, window time.Duration, max int) (bool, error)
}

// AuthRepo is the store the workflow engine runs against
type AuthRepo interface {
	CredentialStore
	OtpLedger
	TokenLedger

	// Atomic runs fn against a view of the store in which every call is part of one unit of work.
	// The unit commits when fn returns nil and is discarded otherwise.
	Atomic(ctx context.Context, fn func(repo AuthRepo) error) error

	// Ping reports whether the store is reachable
	Ping(ctx context.Context) error
}
