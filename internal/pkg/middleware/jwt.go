package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/masarify/authsvc/internal/pkg/apperror"
	"github.com/masarify/authsvc/internal/pkg/logger"
	"github.com/masarify/authsvc/internal/utils"
)

// SessionVerifier resolves a bearer token to the mobile number it was issued for
type SessionVerifier interface {
	VerifySession(token string) (string, error)
}

// BearerAuthMiddleware rejects requests without a valid session token
// and stores the authenticated mobile number in the echo context
func BearerAuthMiddleware(verifier SessionVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			token := ""
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
			if token == "" {
				return utils.UnauthorizedResponse(c, "Missing bearer token")
			}

			mobile, err := verifier.VerifySession(token)
			if err != nil {
				if apperror.Is(err, apperror.KindUnauthorized) {
					return utils.UnauthorizedResponse(c, apperror.Message(err))
				}
				return utils.UnauthorizedResponse(c, "Invalid or expired token")
			}

			c.Set(logger.AuthMobileKey, mobile)
			return next(c)
		}
	}
}

// AuthMobile returns the mobile number stored by BearerAuthMiddleware
func AuthMobile(c echo.Context) (string, bool) {
	mobile, ok := c.Get(logger.AuthMobileKey).(string)
	return mobile, ok && mobile != ""
}
