package firsttimer

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

const (
	maxNameLength  = 255
	maxPhoneLength = 32
	maxNotesLength = 5000
)

// LogInput holds parameters for logging a visitor.
type LogInput struct {
	ChurchID uuid.UUID
	Name     string
	Phone    string
}

// Validate validates the log input.
func (i LogInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	phone := strings.TrimSpace(i.Phone)
	if phone == "" {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "required"})
	} else if len(phone) > maxPhoneLength {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// FollowUpInput replaces a visitor's follow-up status, date and notes.
// A nil Date or Notes clears the stored value.
type FollowUpInput struct {
	FirstTimerID uuid.UUID
	Status       domain.FollowUpStatus
	Date         *time.Time
	Notes        *string
}

// Validate validates the follow-up input.
func (i FollowUpInput) Validate() error {
	var errs []domain.FieldError

	if i.FirstTimerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Date != nil && i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "invalid date"})
	}
	if i.Notes != nil && len(*i.Notes) > maxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
