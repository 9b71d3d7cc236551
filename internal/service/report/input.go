package report

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

const (
	maxContentLength = 10000
	maxReplyLength   = 5000
)

// SubmitInput holds parameters for submitting a weekly report.
// A nil UnitID means the unit the caller heads.
type SubmitInput struct {
	ChurchID uuid.UUID
	UnitID   *uuid.UUID
	Content  string
}

// Validate validates the submit input.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if i.UnitID != nil && *i.UnitID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "unitId", Message: "invalid value"})
	}
	content := strings.TrimSpace(i.Content)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if len(content) > maxContentLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReplyInput holds the pastor's reply to a report.
type ReplyInput struct {
	ReportID uuid.UUID
	Reply    string
}

// Validate validates the reply input.
func (i ReplyInput) Validate() error {
	var errs []domain.FieldError

	if i.ReportID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	reply := strings.TrimSpace(i.Reply)
	if reply == "" {
		errs = append(errs, domain.FieldError{Field: "reply", Message: "required"})
	} else if len(reply) > maxReplyLength {
		errs = append(errs, domain.FieldError{Field: "reply", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
