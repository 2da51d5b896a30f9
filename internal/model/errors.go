package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")

	// Entitlement errors
	ErrInsufficientBalance = errors.New("insufficient coin balance")
	ErrNotVerified         = errors.New("account not verified")

	// Verification errors
	ErrAlreadyVerified = errors.New("account already verified")

	// Domain validation errors
	ErrInvalidRegion = errors.New("invalid region code")
	ErrInvalidMode   = errors.New("invalid mode code")
)
