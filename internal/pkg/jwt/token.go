package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/masarify/authsvc/internal/pkg/apperror"
	"github.com/masarify/authsvc/internal/pkg/clock"
	"github.com/masarify/authsvc/internal/pkg/models"
)

// Fixed claim values checked on every verification
const (
	DefaultIssuer     = "masarify-auth"
	DefaultAudience   = "masarify-mobile-app"
	DefaultExpiration = 7 * 24 * time.Hour
)

// Issuer mints and verifies stateless bearer tokens bound to a mobile number
type Issuer struct {
	secret     []byte
	issuer     string
	audience   string
	expiration time.Duration
	clock      clock.Clock
}

// NewIssuer creates an issuer from JWT configuration. Empty values fall back to the defaults.
func NewIssuer(cfg models.JWTConfig, clk clock.Clock) *Issuer {
	issuer := &Issuer{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		audience:   cfg.Audience,
		expiration: cfg.Expiration,
		clock:      clk,
	}
	if issuer.issuer == "" {
		issuer.issuer = DefaultIssuer
	}
	if issuer.audience == "" {
		issuer.audience = DefaultAudience
	}
	if issuer.expiration <= 0 {
		issuer.expiration = DefaultExpiration
	}
	if issuer.clock == nil {
		issuer.clock = clock.Real{}
	}
	return issuer
}

// IssueSession signs a token whose subject is mobile
func (i *Issuer) IssueSession(mobile string) (string, int64, error) {
	now := i.clock.Now()
	expiresAt := now.Add(i.expiration)

	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   mobile,
		Issuer:    i.issuer,
		Audience:  jwt.ClaimStrings{i.audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

// VerifySession validates signature, issuer, audience and expiry and returns the subject
func (i *Issuer) VerifySession(tokenString string) (string, error) {
	if tokenString == "" {
		return "", apperror.Unauthorized("Missing bearer token")
	}

	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return "", apperror.Wrap(apperror.KindUnauthorized, "Invalid or expired token", err)
	}

	if !claims.VerifyIssuer(i.issuer, true) || !claims.VerifyAudience(i.audience, true) {
		return "", apperror.Unauthorized("Invalid or expired token")
	}

	// Time claims are checked against the issuer clock rather than the package-level jwt.TimeFunc.
	now := i.clock.Now()
	if !claims.VerifyExpiresAt(now, true) || !claims.VerifyNotBefore(now, false) {
		return "", apperror.Unauthorized("Invalid or expired token")
	}

	if claims.Subject == "" {
		return "", apperror.Unauthorized("Invalid token payload")
	}

	return claims.Subject, nil
}
