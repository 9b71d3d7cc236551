package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Authentication failures. Each carries the message shown to the caller.
var (
	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = &AuthError{Message: "invalid email or password", Kind: ErrUnauthorized}

	// ErrAdminPortalRequired is returned when a super admin signs in through the worker portal.
	ErrAdminPortalRequired = &AuthError{Message: "Admins must use the Pastor/Admin login.", Kind: ErrForbidden}

	// ErrWorkerPortalRequired is returned when a non-admin signs in through the admin portal.
	ErrWorkerPortalRequired = &AuthError{Message: "This user is not an admin. Please use the worker login.", Kind: ErrForbidden}
)

// AuthError is a sign-in failure with a fixed, user-facing message.
// It unwraps to ErrUnauthorized or ErrForbidden.
type AuthError struct {
	Message string
	Kind    error
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Unwrap() error { return e.Kind }

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
