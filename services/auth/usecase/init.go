package usecase

import (
	"sync"

	"github.com/masarify/authsvc/internal/pkg/apperror"
	"github.com/masarify/authsvc/internal/pkg/clock"
	"github.com/masarify/authsvc/internal/pkg/models"
	"github.com/masarify/authsvc/internal/utils"
	"github.com/masarify/authsvc/services/auth"
)

// Messages returned to clients
const (
	msgRateLimited          = "OTP rate limit exceeded. Please retry later."
	msgOtpNotFound          = "OTP request not found"
	msgOtpMismatch          = "OTP request does not match provided identity"
	msgOtpExpired           = "OTP has expired"
	msgOtpAttemptsExceeded  = "OTP verification attempts exceeded"
	msgOtpInvalid           = "Invalid OTP"
	msgTokenNotFound        = "Verification token not found"
	msgTokenExpired         = "Verification token expired"
	msgTokenMismatch        = "Verification token mismatch"
	msgPasswordMismatch     = "Password and confirm password must match"
	msgUserExists           = "User already exists"
	msgInvalidCredentials   = "Invalid credentials"
	msgUserNotFound         = "User not found"
	msgOldPasswordIncorrect = "Old password is incorrect"
	msgMobileRequired       = "Mobile number is required"
	msgInvalidPurpose       = "OTP purpose must be register or reset"
)

// otpCodeLength is the number of digits in an OTP code
const otpCodeLength = 6

// AuthUC implements the identity workflows on top of an auth.AuthRepo
type AuthUC struct {
	repo     auth.AuthRepo
	rates    auth.RateLedger
	sessions auth.SessionIssuer
	hasher   auth.PasswordHasher
	clock    clock.Clock
	cfg      *models.Config

	generateCode func(length int) (string, error)

	dummyOnce   sync.Once
	dummyDigest string
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	repo auth.AuthRepo,
	rates auth.RateLedger,
	sessions auth.SessionIssuer,
	hasher auth.PasswordHasher,
	clk clock.Clock,
	cfg *models.Config,
) *AuthUC {
	if clk == nil {
		clk = clock.Real{}
	}
	return &AuthUC{
		repo:     repo,
		rates:    rates,
		sessions: sessions,
		hasher:   hasher,
		clock:    clk,
		cfg:      cfg,

		generateCode: utils.GenerateNumericCode,
	}
}

// settle ends a unit of work. Workflow failures are recorded in failure and the unit still
// commits, so cleanup such as deleting an expired record persists. Anything else rolls back.
func settle(err error, failure *error) error {
	if err == nil {
		return nil
	}
	if apperror.KindOf(err) != apperror.KindInternal {
		*failure = err
		return nil
	}
	return err
}

func requireMobile(mobile string) error {
	if mobile == "" {
		return apperror.Validation(msgMobileRequired)
	}
	return nil
}
