package actionplan

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

const (
	maxDescriptionLength = 2000
	maxExecutionerLength = 255
)

// AddItemInput holds parameters for adding an action item. Status defaults
// to Planned.
type AddItemInput struct {
	ChurchID    uuid.UUID
	UnitID      uuid.UUID
	Description string
	Executioner string
	StartDate   time.Time
	EndDate     time.Time
	Priority    domain.Priority
	Status      domain.ActionStatus
}

// Validate validates the add item input.
func (i AddItemInput) Validate() error {
	var errs []domain.FieldError

	if i.UnitID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "unitId", Message: "required"})
	}
	errs = validateText(errs, "description", i.Description, maxDescriptionLength)
	errs = validateText(errs, "executioner", i.Executioner, maxExecutionerLength)

	if i.StartDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "startDate", Message: "required"})
	}
	if i.EndDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "endDate", Message: "required"})
	}
	if !i.StartDate.IsZero() && !i.EndDate.IsZero() && domain.DateOf(i.EndDate).Before(domain.DateOf(i.StartDate)) {
		errs = append(errs, domain.FieldError{Field: "endDate", Message: "must not be before startDate"})
	}

	if !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid value"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateItemInput holds a partial update of an action item.
// Nil fields are left unchanged.
type UpdateItemInput struct {
	ItemID  uuid.UUID
	Changes domain.ActionItemChanges
}

// Validate validates the update item input. The date order is checked
// against the stored item by the service.
func (i UpdateItemInput) Validate() error {
	var errs []domain.FieldError
	c := i.Changes

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if c.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "changes", Message: "at least one field required"})
	}
	if c.Description != nil {
		errs = validateText(errs, "description", *c.Description, maxDescriptionLength)
	}
	if c.Executioner != nil {
		errs = validateText(errs, "executioner", *c.Executioner, maxExecutionerLength)
	}
	if c.StartDate != nil && c.StartDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "startDate", Message: "invalid date"})
	}
	if c.EndDate != nil && c.EndDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "endDate", Message: "invalid date"})
	}
	if c.Status != nil && !c.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if c.Priority != nil && !c.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateText(errs []domain.FieldError, field, value string, max int) []domain.FieldError {
	v := strings.TrimSpace(value)
	switch {
	case v == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case len(v) > max:
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}
