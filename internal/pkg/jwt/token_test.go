package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/masarify/authsvc/internal/pkg/apperror"
	"github.com/masarify/authsvc/internal/pkg/clock"
	"github.com/masarify/authsvc/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt-signing"

func getTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     testSecret,
		Issuer:     DefaultIssuer,
		Audience:   DefaultAudience,
		Expiration: DefaultExpiration,
	}
}

func signClaims(t *testing.T, claims jwt.Claims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestIssueSession(t *testing.T) {
	issuer := NewIssuer(getTestConfig(), clock.Real{})

	before := time.Now()
	tokenString, expiresAt, err := issuer.IssueSession("01012345678")
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	// seven day lifetime
	assert.GreaterOrEqual(t, expiresAt, before.Add(DefaultExpiration).Unix())
	assert.LessOrEqual(t, expiresAt, time.Now().Add(DefaultExpiration).Unix())

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "01012345678", claims.Subject)
	assert.Equal(t, DefaultIssuer, claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{DefaultAudience}, claims.Audience)
	assert.NotEmpty(t, claims.ID)
}

func TestNewIssuer_Defaults(t *testing.T) {
	issuer := NewIssuer(models.JWTConfig{Secret: testSecret}, nil)

	assert.Equal(t, DefaultIssuer, issuer.issuer)
	assert.Equal(t, DefaultAudience, issuer.audience)
	assert.Equal(t, DefaultExpiration, issuer.expiration)
	assert.NotNil(t, issuer.clock)
}

func TestVerifySession(t *testing.T) {
	issuer := NewIssuer(getTestConfig(), clock.Real{})
	validToken, _, err := issuer.IssueSession("01012345678")
	require.NoError(t, err)

	now := time.Now()
	baseClaims := func() jwt.RegisteredClaims {
		return jwt.RegisteredClaims{
			Subject:   "01012345678",
			Issuer:    DefaultIssuer,
			Audience:  jwt.ClaimStrings{DefaultAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}
	}

	tests := []struct {
		name        string
		setupToken  func() string
		wantSubject string
		wantErr     bool
	}{
		{
			name:        "Valid token",
			setupToken:  func() string { return validToken },
			wantSubject: "01012345678",
		},
		{
			name:       "Empty token",
			setupToken: func() string { return "" },
			wantErr:    true,
		},
		{
			name:       "Malformed token",
			setupToken: func() string { return "invalid.token.string" },
			wantErr:    true,
		},
		{
			name: "Tampered signature",
			setupToken: func() string {
				parts := strings.Split(validToken, ".")
				sig := []byte(parts[2])
				if sig[0] == 'A' {
					sig[0] = 'B'
				} else {
					sig[0] = 'A'
				}
				return parts[0] + "." + parts[1] + "." + string(sig)
			},
			wantErr: true,
		},
		{
			name: "Wrong secret",
			setupToken: func() string {
				return signClaims(t, baseClaims(), "another-secret-of-decent-length")
			},
			wantErr: true,
		},
		{
			name: "Wrong issuer",
			setupToken: func() string {
				claims := baseClaims()
				claims.Issuer = "someone-else"
				return signClaims(t, claims, testSecret)
			},
			wantErr: true,
		},
		{
			name: "Wrong audience",
			setupToken: func() string {
				claims := baseClaims()
				claims.Audience = jwt.ClaimStrings{"web-dashboard"}
				return signClaims(t, claims, testSecret)
			},
			wantErr: true,
		},
		{
			name: "Missing subject",
			setupToken: func() string {
				claims := baseClaims()
				claims.Subject = ""
				return signClaims(t, claims, testSecret)
			},
			wantErr: true,
		},
		{
			name: "Expired token",
			setupToken: func() string {
				past := clock.NewFake(now.Add(-8 * 24 * time.Hour))
				token, _, err := NewIssuer(getTestConfig(), past).IssueSession("01012345678")
				require.NoError(t, err)
				return token
			},
			wantErr: true,
		},
		{
			name: "Unsigned token",
			setupToken: func() string {
				token, err := jwt.NewWithClaims(jwt.SigningMethodNone, baseClaims()).SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return token
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, err := issuer.VerifySession(tt.setupToken())

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, apperror.Is(err, apperror.KindUnauthorized))
				assert.Empty(t, subject)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantSubject, subject)
			}
		})
	}
}

func TestIssuer_VerifySessionUsesIssuerClock(t *testing.T) {
	clk := clock.NewFake(time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC))
	issuer := NewIssuer(getTestConfig(), clk)

	token, _, err := issuer.IssueSession("01012345678")
	require.NoError(t, err)

	subject, err := issuer.VerifySession(token)
	require.NoError(t, err)
	assert.Equal(t, "01012345678", subject)

	clk.Advance(DefaultExpiration + time.Second)
	_, err = issuer.VerifySession(token)
	assert.True(t, apperror.Is(err, apperror.KindUnauthorized))
}
