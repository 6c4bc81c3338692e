package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

// AuthMobileKey is the echo context key holding the authenticated mobile number
const AuthMobileKey = "auth_mobile"

// ZapEchoMiddleware creates middleware for Echo framework using Zap logger
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			latency := time.Since(start)
			statusCode := c.Response().Status
			clientIP := c.RealIP()
			method := c.Request().Method

			if raw != "" {
				path = path + "?" + raw
			}

			mobile := "anonymous"
			if v := c.Get(AuthMobileKey); v != nil {
				mobile = fmt.Sprintf("%v", v)
			}

			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			logger.LogHTTPRequest(method, path, clientIP, mobile, requestID, statusCode, latency, err)

			return nil
		}
	}
}
