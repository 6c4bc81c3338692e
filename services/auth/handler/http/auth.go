package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/masarify/authsvc/internal/pkg/apperror"
	"github.com/masarify/authsvc/internal/pkg/logger"
	"github.com/masarify/authsvc/internal/pkg/middleware"
	"github.com/masarify/authsvc/internal/pkg/models"
	"github.com/masarify/authsvc/internal/utils"
	"github.com/masarify/authsvc/services/auth"
)

// AuthHandler handles HTTP requests for OTP and credential operations
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// failure logs unexpected errors and writes the enveloped error response
func failure(c echo.Context, endpoint string, err error) error {
	if apperror.KindOf(err) == apperror.KindInternal {
		logger.ErrorCtx(c.Request().Context(), "Auth request failed",
			logger.ErrorField(err),
			logger.String("endpoint", endpoint),
		)
	}
	return utils.AppErrorResponse(c, err)
}

// RequestOTP handles OTP issuance requests
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req models.RequestOtpRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	req.Mobile = utils.NormalizeInput(req.Mobile)
	if err := c.Validate(&req); err != nil {
		return failure(c, "RequestOTP", err)
	}

	issued, err := h.authUC.RequestOTP(c.Request().Context(), req.Mobile, req.Purpose)
	if err != nil {
		return failure(c, "RequestOTP", err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "OTP generated successfully", issued)
}

// VerifyOTP handles OTP verification requests
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOtpRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	req.Mobile = utils.NormalizeInput(req.Mobile)
	req.OTP = utils.NormalizeInput(req.OTP)
	if err := c.Validate(&req); err != nil {
		return failure(c, "VerifyOTP", err)
	}

	verified, err := h.authUC.VerifyOtpRequest(c.Request().Context(), req.RequestID, req.Mobile, req.Purpose, req.OTP)
	if err != nil {
		return failure(c, "VerifyOTP", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP verified successfully", verified)
}

// Register handles account creation after OTP verification
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	req.Mobile = utils.NormalizeInput(req.Mobile)
	if err := c.Validate(&req); err != nil {
		return failure(c, "Register", err)
	}

	session, err := h.authUC.Register(c.Request().Context(), req.Mobile, req.VerificationToken, req.Password, req.ConfirmPassword)
	if err != nil {
		return failure(c, "Register", err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", session)
}

// Login handles mobile and password authentication
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	req.Mobile = utils.NormalizeInput(req.Mobile)
	if err := c.Validate(&req); err != nil {
		return failure(c, "Login", err)
	}

	session, err := h.authUC.Login(c.Request().Context(), req.Mobile, req.Password)
	if err != nil {
		return failure(c, "Login", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", session)
}

// ResetPassword handles forgotten password replacement
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	req.Mobile = utils.NormalizeInput(req.Mobile)
	if err := c.Validate(&req); err != nil {
		return failure(c, "ResetPassword", err)
	}

	session, err := h.authUC.ResetPassword(c.Request().Context(), req.Mobile, req.VerificationToken, req.Password, req.ConfirmPassword)
	if err != nil {
		return failure(c, "ResetPassword", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password reset successfully", session)
}

// ChangePassword handles password changes for the authenticated mobile
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	mobile, ok := middleware.AuthMobile(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing bearer token")
	}

	var req models.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return failure(c, "ChangePassword", err)
	}

	if err := h.authUC.ChangePassword(c.Request().Context(), mobile, req.OldPassword, req.NewPassword, req.ConfirmPassword); err != nil {
		return failure(c, "ChangePassword", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", map[string]bool{"success": true})
}

// Me returns the authenticated mobile
func (h *AuthHandler) Me(c echo.Context) error {
	mobile, ok := middleware.AuthMobile(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing bearer token")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Current user", map[string]interface{}{
		"user": models.UserSummary{Mobile: mobile},
	})
}
