package models

import "errors"

// Sentinel errors shared by services and mapped to HTTP statuses in controllers.
var (
	// ErrValidation is wrapped by field-specific validation failures so
	// controllers can map them all onto 400.
	ErrValidation = errors.New("validation error")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrAlertNotFound      = errors.New("alert not found")
	ErrAlreadyBlocked     = errors.New("website is already blocked")
	ErrInvalidPairCode    = errors.New("invalid or expired pairing code")
	ErrNotFamilyMember    = errors.New("child does not belong to this parent")
)
