package user

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

const (
	maxNameLength     = 255
	maxEmailLength    = 254
	maxPhoneLength    = 32
	minPasswordLength = 6
	maxPasswordLength = 72 // bcrypt ignores anything longer
)

// AccountInput is the part of a new account common to every way of creating one.
type AccountInput struct {
	Name            string
	Phone           string
	Email           string
	Password        string
	MemberOfUnitIDs []uuid.UUID
}

func (i AccountInput) validate() []domain.FieldError {
	var errs []domain.FieldError

	name := domain.NormalizeName(i.Name)
	switch {
	case name == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	case utf8.RuneCountInString(name) > maxNameLength:
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	email := strings.TrimSpace(i.Email)
	switch {
	case email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > maxEmailLength:
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	case !looksLikeEmail(email):
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}

	phone := strings.TrimSpace(i.Phone)
	switch {
	case phone == "":
		errs = append(errs, domain.FieldError{Field: "phone", Message: "required"})
	case len(phone) > maxPhoneLength:
		errs = append(errs, domain.FieldError{Field: "phone", Message: "too long"})
	}

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(i.Password) < minPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	case len(i.Password) > maxPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	for _, id := range i.MemberOfUnitIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "memberOfUnitIds", Message: "invalid id"})
			break
		}
	}

	return errs
}

func looksLikeEmail(s string) bool {
	at := strings.LastIndexByte(s, '@')
	return at > 0 && at < len(s)-1 && !strings.ContainsAny(s, " \t\r\n")
}

// CreateUserInput holds parameters for an admin creating a user.
// Unit heads are made only through unit management, so Role may not be
// RoleUnitHead.
type CreateUserInput struct {
	ChurchID uuid.UUID
	Role     domain.UserRole
	AccountInput
}

// Validate validates the create user input.
func (i CreateUserInput) Validate() error {
	errs := i.AccountInput.validate()
	switch {
	case i.Role == "":
		errs = append(errs, domain.FieldError{Field: "role", Message: "required"})
	case !i.Role.IsValid():
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid value"})
	case i.Role == domain.RoleUnitHead:
		errs = append(errs, domain.FieldError{Field: "role", Message: "unit heads are assigned through units"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RegisterMemberInput holds parameters for member self-registration.
type RegisterMemberInput struct {
	ChurchID uuid.UUID
	AccountInput
}

// Validate validates the register member input.
func (i RegisterMemberInput) Validate() error {
	errs := i.AccountInput.validate()
	if i.ChurchID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "churchId", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
