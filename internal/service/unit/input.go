package unit

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

const maxNameLength = 120

// CreateUnitInput holds parameters for unit creation.
// A nil ChurchID means the caller's church.
type CreateUnitInput struct {
	ChurchID uuid.UUID
	Name     string
	HeadID   *uuid.UUID
}

// Validate validates the create unit input.
func (i CreateUnitInput) Validate() error {
	errs := validateName(nil, i.Name)
	if i.HeadID != nil && *i.HeadID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "headId", Message: "invalid id"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateUnitInput holds parameters for unit update. The name is always
// overwritten; a nil HeadID leaves the unit without a head.
type UpdateUnitInput struct {
	UnitID uuid.UUID
	Name   string
	HeadID *uuid.UUID
}

// Validate validates the update unit input.
func (i UpdateUnitInput) Validate() error {
	var errs []domain.FieldError
	if i.UnitID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = validateName(errs, i.Name)
	if i.HeadID != nil && *i.HeadID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "headId", Message: "invalid id"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	switch {
	case domain.NormalizeName(name) == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	case utf8.RuneCountInString(name) > maxNameLength:
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	return errs
}
