package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/masarify/authsvc/internal/pkg/clock"
	"github.com/masarify/authsvc/internal/pkg/jwt"
	"github.com/masarify/authsvc/internal/pkg/models"
	"github.com/masarify/authsvc/internal/pkg/password"
	"github.com/masarify/authsvc/services/auth/repository"
)

const (
	testMobile   = "01012345678"
	testPassword = "Passw0rd!"
)

var testStart = time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)

func newTestConfig() *models.Config {
	return &models.Config{
		App: models.AppConfig{
			Name:        "masarify-auth",
			Environment: models.EnvDevelopment,
		},
		JWT: models.JWTConfig{
			Secret: "unit-test-secret-0123456789",
		},
		OTP: models.OTPConfig{
			TTL:                  5 * time.Minute,
			VerificationTokenTTL: 10 * time.Minute,
			MaxVerifyAttempts:    5,
			MaxRequestsPerWindow: 5,
			RateLimitWindow:      10 * time.Minute,
		},
		Password: models.PasswordConfig{Cost: 4},
	}
}

type testEnv struct {
	uc       *AuthUC
	repo     *repository.MemoryRepo
	clock    *clock.Fake
	sessions *jwt.Issuer
	cfg      *models.Config
}

func setupAuthUCTest(t *testing.T) *testEnv {
	t.Helper()

	cfg := newTestConfig()
	clk := clock.NewFake(testStart)
	repo := repository.NewMemoryRepo()
	sessions := jwt.NewIssuer(cfg.JWT, clk)
	hasher := password.NewBcryptHasher(cfg.Password.Cost)

	return &testEnv{
		uc:       NewAuthUC(repo, repo, sessions, hasher, clk, cfg),
		repo:     repo,
		clock:    clk,
		sessions: sessions,
		cfg:      cfg,
	}
}

// verifiedToken runs request and verify for mobile and returns the verification token
func (e *testEnv) verifiedToken(t *testing.T, mobile string, purpose models.OtpPurpose) string {
	t.Helper()
	ctx := context.Background()

	issued, err := e.uc.RequestOTP(ctx, mobile, purpose)
	require.NoError(t, err)
	require.NotEmpty(t, issued.DebugOTP)

	verified, err := e.uc.VerifyOtpRequest(ctx, issued.RequestID, mobile, purpose, issued.DebugOTP)
	require.NoError(t, err)
	return verified.VerificationToken
}

// registered creates a user with testPassword
func (e *testEnv) registered(t *testing.T, mobile string) {
	t.Helper()
	token := e.verifiedToken(t, mobile, models.PurposeRegister)
	_, err := e.uc.Register(context.Background(), mobile, token, testPassword, testPassword)
	require.NoError(t, err)
}
