package models

import (
	"time"
)

// OtpPurpose is the flow an OTP challenge was issued for
type OtpPurpose string

const (
	PurposeRegister OtpPurpose = "register"
	PurposeReset    OtpPurpose = "reset"
)

// Valid reports whether p is a known purpose
func (p OtpPurpose) Valid() bool {
	return p == PurposeRegister || p == PurposeReset
}

// OtpRequest is an outstanding one-time passcode challenge
type OtpRequest struct {
	RequestID      string     `json:"request_id" db:"request_id"`
	Mobile         string     `json:"mobile" db:"mobile"`
	Purpose        OtpPurpose `json:"purpose" db:"purpose"`
	Code           string     `json:"-" db:"code"`
	ExpiresAt      time.Time  `json:"expires_at" db:"expires_at"`
	VerifyAttempts int        `json:"verify_attempts" db:"verify_attempts"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}

// VerificationToken proves a completed OTP challenge and is consumable once
type VerificationToken struct {
	Token     string     `json:"token" db:"token"`
	Mobile    string     `json:"mobile" db:"mobile"`
	Purpose   OtpPurpose `json:"purpose" db:"purpose"`
	ExpiresAt time.Time  `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// OtpIssued is returned when a challenge is created
type OtpIssued struct {
	RequestID        string `json:"requestId"`
	ExpiresInSeconds int64  `json:"expiresInSeconds"`
	DebugOTP         string `json:"debugOtp,omitempty"`
}

// OtpVerified is returned when a challenge is passed
type OtpVerified struct {
	VerificationToken string `json:"verificationToken"`
	ExpiresInSeconds  int64  `json:"expiresInSeconds"`
}

// RequestOtpRequest represents a request to issue an OTP
type RequestOtpRequest struct {
	Mobile  string     `json:"mobile" validate:"required,mobile"`
	Purpose OtpPurpose `json:"purpose" validate:"required,oneof=register reset"`
}

// VerifyOtpRequest represents a request to verify an OTP
type VerifyOtpRequest struct {
	RequestID string     `json:"requestId" validate:"required,uuid"`
	Mobile    string     `json:"mobile" validate:"required,mobile"`
	Purpose   OtpPurpose `json:"purpose" validate:"required,oneof=register reset"`
	OTP       string     `json:"otp" validate:"required,numeric,len=6"`
}
