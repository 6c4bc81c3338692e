package models

import (
	"time"
)

// User represents a registered account keyed by mobile number
type User struct {
	Mobile       string    `json:"mobile" db:"mobile"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// UserSummary is the public view of a user returned with a session
type UserSummary struct {
	Mobile    string     `json:"mobile"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// AuthSession is returned by register, login and reset
type AuthSession struct {
	AccessToken string      `json:"accessToken"`
	ExpiresAt   int64       `json:"expiresAt"`
	User        UserSummary `json:"user"`
}

// SeedResult describes what EnsureSeedUser did
type SeedResult string

const (
	SeedCreated  SeedResult = "created"
	SeedUpdated  SeedResult = "updated"
	SeedExisting SeedResult = "existing"
)

// RegisterRequest represents a request to create credentials after OTP verification
type RegisterRequest struct {
	Mobile            string `json:"mobile" validate:"required,mobile"`
	VerificationToken string `json:"verificationToken" validate:"required,uuid"`
	Password          string `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword   string `json:"confirmPassword" validate:"required,min=8,max=72"`
}

// LoginRequest represents a request to login with mobile and password
type LoginRequest struct {
	Mobile   string `json:"mobile" validate:"required,mobile"`
	Password string `json:"password" validate:"required"`
}

// ResetPasswordRequest represents a request to replace a forgotten password
type ResetPasswordRequest struct {
	Mobile            string `json:"mobile" validate:"required,mobile"`
	VerificationToken string `json:"verificationToken" validate:"required,uuid"`
	Password          string `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword   string `json:"confirmPassword" validate:"required,min=8,max=72"`
}

// ChangePasswordRequest represents an authenticated password change
type ChangePasswordRequest struct {
	OldPassword     string `json:"oldPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,min=8,max=72"`
}
