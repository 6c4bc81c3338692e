package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masarify/authsvc/internal/pkg/apperror"
	"github.com/masarify/authsvc/internal/pkg/clock"
	"github.com/masarify/authsvc/internal/pkg/models"
	"github.com/masarify/authsvc/internal/pkg/password"
	"github.com/masarify/authsvc/services/auth"
	"github.com/masarify/authsvc/services/auth/mocks"
)

func TestAuthUC_RequestOTP_RateLimit(t *testing.T) {
	env := setupAuthUCTest(t)
	ctx := context.Background()

	for i := 0; i < env.cfg.OTP.MaxRequestsPerWindow; i++ {
		_, err := env.uc.RequestOTP(ctx, testMobile, models.PurposeRegister)
		require.NoError(t, err, "request %d", i+1)
		env.clock.Advance(time.Second)
	}

	_, err := env.uc.RequestOTP(ctx, testMobile, models.PurposeRegister)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindRateLimited))
	assert.Equal(t, "OTP rate limit exceeded. Please retry later.", apperror.Message(err))

	// the limit is per mobile
	_, err = env.uc.RequestOTP(ctx, "01198765432", models.PurposeRegister)
	assert.NoError(t, err)

	env.clock.Advance(env.cfg.OTP.RateLimitWindow)
	_, err = env.uc.RequestOTP(ctx, testMobile, models.PurposeRegister)
	assert.NoError(t, err)
}

func TestAuthUC_RequestOTP_InvalidInput(t *testing.T) {
	env := setupAuthUCTest(t)
	ctx := context.Background()

	_, err := env.uc.RequestOTP(ctx, testMobile, models.OtpPurpose("login"))
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	_, err = env.uc.RequestOTP(ctx, "", models.PurposeRegister)
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestAuthUC_CreateOtpRequest(t *testing.T) {
	env := setupAuthUCTest(t)
	ctx := context.Background()

	issued, err := env.uc.CreateOtpRequest(ctx, testMobile, models.PurposeReset)
	require.NoError(t, err)

	_, err = uuid.Parse(issued.RequestID)
	assert.NoError(t, err)
	assert.Equal(t, int64(300), issued.ExpiresInSeconds)
	assert.Len(t, issued.DebugOTP, 6)

	stored, err := env.repo.GetOtpRequest(ctx, issued.RequestID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, testMobile, stored.Mobile)
	assert.Equal(t, models.PurposeReset, stored.Purpose)
	assert.Equal(t, issued.DebugOTP, stored.Code)
	assert.Equal(t, 0, stored.VerifyAttempts)
	assert.Equal(t, testStart.Add(5*time.Minute), stored.ExpiresAt)
}

func TestAuthUC_CreateOtpRequest_ProductionLikeHidesCode(t *testing.T) {
	for _, environment := range []string{models.EnvStaging, models.EnvProduction} {
		t.Run(environment, func(t *testing.T) {
			env := setupAuthUCTest(t)
			env.cfg.App.Environment = environment

			issued, err := env.uc.CreateOtpRequest(context.Background(), testMobile, models.PurposeRegister)
			require.NoError(t, err)
			assert.Empty(t, issued.DebugOTP)
			assert.NotEmpty(t, issued.RequestID)
		})
	}
}

func TestAuthUC_VerifyOtpRequest_SingleUse(t *testing.T) {
	env := setupAuthUCTest(t)
	ctx := context.Background()

	issued, err := env.uc.RequestOTP(ctx, testMobile, models.PurposeRegister)
	require.NoError(t, err)

	verified, err := env.uc.VerifyOtpRequest(ctx, issued.RequestID, testMobile, models.PurposeRegister, issued.DebugOTP)
	require.NoError(t, err)
	assert.Equal(t, int64(600), verified.ExpiresInSeconds)

	token, err := env.repo.GetVerificationToken(ctx, verified.VerificationToken)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, testMobile, token.Mobile)
	assert.Equal(t, models.PurposeRegister, token.Purpose)
	assert.Equal(t, testStart.Add(10*time.Minute), token.ExpiresAt)

	_, err = env.uc.VerifyOtpRequest(ctx, issued.RequestID, testMobile, models.PurposeRegister, issued.DebugOTP)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestAuthUC_VerifyOtpRequest_AttemptsExceeded(t *testing.T) {
	env := setupAuthUCTest(t)
	ctx := context.Background()

	issued, err := env.uc.RequestOTP(ctx, testMobile, models.PurposeRegister)
	require.NoError(t, err)

	wrong := "000000"
	if issued.DebugOTP == wrong {
		wrong = "111111"
	}

	for i := 0; i < env.cfg.OTP.MaxVerifyAttempts; i++ {
		_, err := env.uc.VerifyOtpRequest(ctx, issued.RequestID, testMobile, models.PurposeRegister, wrong)
		require.Error(t, err)
		assert.True(t, apperror.Is(err, apperror.KindInvalidCode), "attempt %d", i+1)
	}

	_, err = env.uc.VerifyOtpRequest(ctx, issued.RequestID, testMobile, models.PurposeRegister, issued.DebugOTP)
	assert.True(t, apperror.Is(err, apperror.KindAttemptsExceeded))

	_, err = env.uc.VerifyOtpRequest(ctx, issued.RequestID, testMobile, models.PurposeRegister, issued.DebugOTP)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestAuthUC_VerifyOtpRequest_Expired(t *testing.T) {
	env := setupAuthUCTest(t)
	ctx := context.Background()

	issued, err := env.uc.RequestOTP(ctx, testMobile, models.PurposeRegister)
	require.NoError(t, err)

	env.clock.Advance(env.cfg.OTP.TTL + time.Second)

	_, err = env.uc.VerifyOtpRequest(ctx, issued.RequestID, testMobile, models.PurposeRegister, issued.DebugOTP)
	assert.True(t, apperror.Is(err, apperror.KindExpired))

	stored, err := env.repo.GetOtpRequest(ctx, issued.RequestID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestAuthUC_VerifyOtpRequest_MismatchLeavesRecord(t *testing.T) {
	env := setupAuthUCTest(t)
	ctx := context.Background()

	issued, err := env.uc.RequestOTP(ctx, testMobile, models.PurposeRegister)
	require.NoError(t, err)

	// mismatch is reported even after expiry
	env.clock.Advance(env.cfg.OTP.TTL + time.Second)

	testCases := []struct {
		name    string
		mobile  string
		purpose models.OtpPurpose
	}{
		{name: "other mobile", mobile: "01198765432", purpose: models.PurposeRegister},
		{name: "other purpose", mobile: testMobile, purpose: models.PurposeReset},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.uc.VerifyOtpRequest(ctx, issued.RequestID, tc.mobile, tc.purpose, issued.DebugOTP)
			assert.True(t, apperror.Is(err, apperror.KindMismatch))
			assert.Equal(t, "OTP request does not match provided identity", apperror.Message(err))
		})
	}

	stored, err := env.repo.GetOtpRequest(ctx, issued.RequestID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 0, stored.VerifyAttempts)
}

func TestAuthUC_VerifyOtpRequest_UnknownRequest(t *testing.T) {
	env := setupAuthUCTest(t)
	ctx := context.Background()

	for _, id := range []string{uuid.NewString(), "not-a-uuid", ""} {
		_, err := env.uc.VerifyOtpRequest(ctx, id, testMobile, models.PurposeRegister, "123456")
		assert.True(t, apperror.Is(err, apperror.KindNotFound), "request id %q", id)
	}
}

func TestAuthUC_ConsumeVerificationToken(t *testing.T) {
	env := setupAuthUCTest(t)
	ctx := context.Background()

	token := env.verifiedToken(t, testMobile, models.PurposeReset)

	err := env.uc.consumeVerificationToken(ctx, env.repo, token, testMobile, models.PurposeRegister)
	assert.True(t, apperror.Is(err, apperror.KindMismatch))

	err = env.uc.consumeVerificationToken(ctx, env.repo, token, "01198765432", models.PurposeReset)
	assert.True(t, apperror.Is(err, apperror.KindMismatch))

	require.NoError(t, env.uc.consumeVerificationToken(ctx, env.repo, token, testMobile, models.PurposeReset))

	err = env.uc.consumeVerificationToken(ctx, env.repo, token, testMobile, models.PurposeReset)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	expiring := env.verifiedToken(t, testMobile, models.PurposeReset)
	env.clock.Advance(env.cfg.OTP.VerificationTokenTTL + time.Second)

	err = env.uc.consumeVerificationToken(ctx, env.repo, expiring, testMobile, models.PurposeReset)
	assert.True(t, apperror.Is(err, apperror.KindExpired))

	record, err := env.repo.GetVerificationToken(ctx, expiring)
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestAuthUC_EnforceOtpRateLimit_LedgerFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockRates := mocks.NewMockRateLedger(ctrl)
	cfg := newTestConfig()
	clk := clock.NewFake(testStart)

	uc := NewAuthUC(mockRepo, mockRates, nil, password.NewBcryptHasher(4), clk, cfg)

	mockRates.EXPECT().
		Admit(gomock.Any(), testMobile, testStart, cfg.OTP.RateLimitWindow, cfg.OTP.MaxRequestsPerWindow).
		Return(false, errors.New("redis: connection pool timeout"))

	_, err := uc.RequestOTP(context.Background(), testMobile, models.PurposeRegister)
	require.Error(t, err)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "failed to check otp rate limit")
}

func TestAuthUC_VerifyOtpRequest_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockRates := mocks.NewMockRateLedger(ctrl)
	cfg := newTestConfig()

	uc := NewAuthUC(mockRepo, mockRates, nil, password.NewBcryptHasher(4), clock.NewFake(testStart), cfg)

	requestID := uuid.NewString()
	mockRepo.EXPECT().
		Atomic(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(repo auth.AuthRepo) error) error {
			return fn(mockRepo)
		})
	mockRepo.EXPECT().
		GetOtpRequest(gomock.Any(), requestID).
		Return(nil, errors.New("connection reset by peer"))

	_, err := uc.VerifyOtpRequest(context.Background(), requestID, testMobile, models.PurposeRegister, "123456")
	require.Error(t, err)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
}
