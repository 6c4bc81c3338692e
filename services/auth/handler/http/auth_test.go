package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masarify/authsvc/internal/pkg/apperror"
	"github.com/masarify/authsvc/internal/pkg/logger"
	"github.com/masarify/authsvc/internal/pkg/models"
	"github.com/masarify/authsvc/internal/utils"
	"github.com/masarify/authsvc/services/auth/mocks"
)

const validRequestID = "5b7c1c1e-8f36-4d0c-9d7e-0a4b9f1e2c33"

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = utils.NewRequestValidator()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func TestRequestOTP_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newTestContext(http.MethodPost, "/api/auth/request-otp", `{"mobile": " 01012345678 ", "purpose": "register"}`)

	mockAuthUC.EXPECT().
		RequestOTP(gomock.Any(), "01012345678", models.PurposeRegister).
		Return(&models.OtpIssued{RequestID: validRequestID, ExpiresInSeconds: 300, DebugOTP: "123456"}, nil)

	err := authHandler.RequestOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, true, response["success"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, validRequestID, data["requestId"])
	assert.Equal(t, float64(300), data["expiresInSeconds"])
	assert.Equal(t, "123456", data["debugOtp"])
}

func TestRequestOTP_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name      string
		body      string
		wantError string
	}{
		{name: "missing mobile", body: `{"purpose": "register"}`, wantError: "mobile is required"},
		{name: "foreign mobile", body: `{"mobile": "+628123456789", "purpose": "register"}`, wantError: "mobile must be a valid Egyptian mobile number"},
		{name: "unknown purpose", body: `{"mobile": "01012345678", "purpose": "login"}`, wantError: "purpose must be one of: register reset"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			authHandler := NewAuthHandler(mocks.NewMockAuthUC(ctrl))
			c, rec := newTestContext(http.MethodPost, "/api/auth/request-otp", tc.body)

			assert.NoError(t, authHandler.RequestOTP(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			response := decodeBody(t, rec)
			assert.Equal(t, false, response["success"])
			assert.Equal(t, tc.wantError, response["error"])
		})
	}
}

func TestRequestOTP_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authHandler := NewAuthHandler(mocks.NewMockAuthUC(ctrl))
	c, rec := newTestContext(http.MethodPost, "/api/auth/request-otp", `{"mobile": `)

	assert.NoError(t, authHandler.RequestOTP(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request payload", decodeBody(t, rec)["error"])
}

func TestRequestOTP_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)
	c, rec := newTestContext(http.MethodPost, "/api/auth/request-otp", `{"mobile": "01012345678", "purpose": "reset"}`)

	mockAuthUC.EXPECT().
		RequestOTP(gomock.Any(), "01012345678", models.PurposeReset).
		Return(nil, apperror.RateLimited("OTP rate limit exceeded. Please retry later."))

	assert.NoError(t, authHandler.RequestOTP(c))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "OTP rate limit exceeded. Please retry later.", decodeBody(t, rec)["error"])
}

func TestVerifyOTP(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		setup      func(m *mocks.MockAuthUC)
		wantStatus int
		wantError  string
	}{
		{
			name: "Success",
			body: `{"requestId": "` + validRequestID + `", "mobile": "01012345678", "purpose": "register", "otp": "012345"}`,
			setup: func(m *mocks.MockAuthUC) {
				m.EXPECT().
					VerifyOtpRequest(gomock.Any(), validRequestID, "01012345678", models.PurposeRegister, "012345").
					Return(&models.OtpVerified{VerificationToken: "tok", ExpiresInSeconds: 600}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Short code",
			body:       `{"requestId": "` + validRequestID + `", "mobile": "01012345678", "purpose": "register", "otp": "12345"}`,
			setup:      func(m *mocks.MockAuthUC) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "otp must be exactly 6 characters",
		},
		{
			name:       "Malformed request id",
			body:       `{"requestId": "abc", "mobile": "01012345678", "purpose": "register", "otp": "123456"}`,
			setup:      func(m *mocks.MockAuthUC) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "requestId must be a valid UUID",
		},
		{
			name: "Invalid code",
			body: `{"requestId": "` + validRequestID + `", "mobile": "01012345678", "purpose": "register", "otp": "999999"}`,
			setup: func(m *mocks.MockAuthUC) {
				m.EXPECT().
					VerifyOtpRequest(gomock.Any(), validRequestID, "01012345678", models.PurposeRegister, "999999").
					Return(nil, apperror.InvalidCode("Invalid OTP"))
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid OTP",
		},
		{
			name: "Unknown request",
			body: `{"requestId": "` + validRequestID + `", "mobile": "01012345678", "purpose": "register", "otp": "999999"}`,
			setup: func(m *mocks.MockAuthUC) {
				m.EXPECT().
					VerifyOtpRequest(gomock.Any(), validRequestID, "01012345678", models.PurposeRegister, "999999").
					Return(nil, apperror.NotFound("OTP request not found"))
			},
			wantStatus: http.StatusNotFound,
			wantError:  "OTP request not found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAuthUC := mocks.NewMockAuthUC(ctrl)
			tc.setup(mockAuthUC)
			authHandler := NewAuthHandler(mockAuthUC)
			c, rec := newTestContext(http.MethodPost, "/api/auth/verify-otp", tc.body)

			assert.NoError(t, authHandler.VerifyOTP(c))
			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantError != "" {
				assert.Equal(t, tc.wantError, decodeBody(t, rec)["error"])
			}
		})
	}
}

func TestRegister(t *testing.T) {
	created := time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)
	body := `{"mobile": "01012345678", "verificationToken": "` + validRequestID + `", "password": "Passw0rd!", "confirmPassword": "Passw0rd!"}`

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAuthUC := mocks.NewMockAuthUC(ctrl)
		authHandler := NewAuthHandler(mockAuthUC)
		c, rec := newTestContext(http.MethodPost, "/api/auth/register", body)

		mockAuthUC.EXPECT().
			Register(gomock.Any(), "01012345678", validRequestID, "Passw0rd!", "Passw0rd!").
			Return(&models.AuthSession{
				AccessToken: "jwt",
				ExpiresAt:   created.Add(7 * 24 * time.Hour).Unix(),
				User:        models.UserSummary{Mobile: "01012345678", CreatedAt: &created},
			}, nil)

		assert.NoError(t, authHandler.Register(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		data := decodeBody(t, rec)["data"].(map[string]interface{})
		assert.Equal(t, "jwt", data["accessToken"])
		user := data["user"].(map[string]interface{})
		assert.Equal(t, "01012345678", user["mobile"])
		assert.Equal(t, "2026-05-04T08:00:00Z", user["createdAt"])
		assert.NotContains(t, user, "updatedAt")
	})

	t.Run("Already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAuthUC := mocks.NewMockAuthUC(ctrl)
		authHandler := NewAuthHandler(mockAuthUC)
		c, rec := newTestContext(http.MethodPost, "/api/auth/register", body)

		mockAuthUC.EXPECT().
			Register(gomock.Any(), "01012345678", validRequestID, "Passw0rd!", "Passw0rd!").
			Return(nil, apperror.AlreadyExists("User already exists"))

		assert.NoError(t, authHandler.Register(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Short password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		authHandler := NewAuthHandler(mocks.NewMockAuthUC(ctrl))
		c, rec := newTestContext(http.MethodPost, "/api/auth/register",
			`{"mobile": "01012345678", "verificationToken": "`+validRequestID+`", "password": "short", "confirmPassword": "short"}`)

		assert.NoError(t, authHandler.Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "password must be at least 8 characters", decodeBody(t, rec)["error"])
	})

	t.Run("Password too long", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		long := strings.Repeat("a", 80)
		authHandler := NewAuthHandler(mocks.NewMockAuthUC(ctrl))
		c, rec := newTestContext(http.MethodPost, "/api/auth/register",
			`{"mobile": "01012345678", "verificationToken": "`+validRequestID+`", "password": "`+long+`", "confirmPassword": "`+long+`"}`)

		assert.NoError(t, authHandler.Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "password must be at most 72 characters", decodeBody(t, rec)["error"])
	})
}

func TestLogin(t *testing.T) {
	t.Run("Invalid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAuthUC := mocks.NewMockAuthUC(ctrl)
		authHandler := NewAuthHandler(mockAuthUC)
		c, rec := newTestContext(http.MethodPost, "/api/auth/login", `{"mobile": "01012345678", "password": "nope"}`)

		mockAuthUC.EXPECT().
			Login(gomock.Any(), "01012345678", "nope").
			Return(nil, apperror.InvalidCredentials("Invalid credentials"))

		assert.NoError(t, authHandler.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", decodeBody(t, rec)["error"])
	})

	t.Run("Internal errors are not leaked", func(t *testing.T) {
		logger.SetGlobalLogger(logger.NewNopLogger())

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAuthUC := mocks.NewMockAuthUC(ctrl)
		authHandler := NewAuthHandler(mockAuthUC)
		c, rec := newTestContext(http.MethodPost, "/api/auth/login", `{"mobile": "01012345678", "password": "Passw0rd!"}`)

		mockAuthUC.EXPECT().
			Login(gomock.Any(), "01012345678", "Passw0rd!").
			Return(nil, errors.New("failed to get user: pq: relation \"users\" does not exist"))

		assert.NoError(t, authHandler.Login(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", decodeBody(t, rec)["error"])
	})
}

func TestResetPassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	updated := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)
	c, rec := newTestContext(http.MethodPost, "/api/auth/reset-password",
		`{"mobile": "01012345678", "verificationToken": "`+validRequestID+`", "password": "N3wPassword", "confirmPassword": "N3wPassword"}`)

	mockAuthUC.EXPECT().
		ResetPassword(gomock.Any(), "01012345678", validRequestID, "N3wPassword", "N3wPassword").
		Return(&models.AuthSession{AccessToken: "jwt", User: models.UserSummary{Mobile: "01012345678", UpdatedAt: &updated}}, nil)

	assert.NoError(t, authHandler.ResetPassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	user := decodeBody(t, rec)["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "2026-05-04T09:00:00Z", user["updatedAt"])
}

func TestChangePassword(t *testing.T) {
	body := `{"oldPassword": "Passw0rd!", "newPassword": "N3wPassword", "confirmPassword": "N3wPassword"}`

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAuthUC := mocks.NewMockAuthUC(ctrl)
		authHandler := NewAuthHandler(mockAuthUC)
		c, rec := newTestContext(http.MethodPost, "/api/auth/change-password", body)
		c.Set(logger.AuthMobileKey, "01012345678")

		mockAuthUC.EXPECT().
			ChangePassword(gomock.Any(), "01012345678", "Passw0rd!", "N3wPassword", "N3wPassword").
			Return(nil)

		assert.NoError(t, authHandler.ChangePassword(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		data := decodeBody(t, rec)["data"].(map[string]interface{})
		assert.Equal(t, true, data["success"])
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		authHandler := NewAuthHandler(mocks.NewMockAuthUC(ctrl))
		c, rec := newTestContext(http.MethodPost, "/api/auth/change-password", body)

		assert.NoError(t, authHandler.ChangePassword(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Wrong old password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAuthUC := mocks.NewMockAuthUC(ctrl)
		authHandler := NewAuthHandler(mockAuthUC)
		c, rec := newTestContext(http.MethodPost, "/api/auth/change-password", body)
		c.Set(logger.AuthMobileKey, "01012345678")

		mockAuthUC.EXPECT().
			ChangePassword(gomock.Any(), "01012345678", "Passw0rd!", "N3wPassword", "N3wPassword").
			Return(apperror.InvalidCredentials("Old password is incorrect"))

		assert.NoError(t, authHandler.ChangePassword(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Old password is incorrect", decodeBody(t, rec)["error"])
	})
}

func TestMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authHandler := NewAuthHandler(mocks.NewMockAuthUC(ctrl))
	c, rec := newTestContext(http.MethodGet, "/api/auth/me", "")
	c.Set(logger.AuthMobileKey, "01012345678")

	assert.NoError(t, authHandler.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"mobile": "01012345678"}, data["user"])
}
