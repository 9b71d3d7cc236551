package auth

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// AuthenticateInput holds the credentials of a sign-in attempt.
type AuthenticateInput struct {
	ChurchID uuid.UUID
	Email    string
	Password string
}

// Validate validates the authenticate input.
func (i AuthenticateInput) Validate() error {
	var errs []domain.FieldError

	if i.ChurchID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "churchId", Message: "required"})
	}
	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for login. An empty Portal skips the portal
// check.
type LoginInput struct {
	AuthenticateInput
	Portal domain.Portal
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	err := i.AuthenticateInput.Validate()
	if i.Portal == "" || i.Portal.IsValid() {
		return err
	}

	portalErr := domain.FieldError{Field: "portal", Message: "must be 'admin' or 'worker'"}
	if verr, ok := err.(*domain.ValidationError); ok {
		verr.Errors = append(verr.Errors, portalErr)
		return verr
	}
	return domain.NewValidationErrors([]domain.FieldError{portalErr})
}
