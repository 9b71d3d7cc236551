package announcement

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

const (
	maxTitleLength   = 200
	maxContentLength = 10000
)

// CreateInput holds parameters for posting an announcement.
type CreateInput struct {
	ChurchID uuid.UUID
	Title    string
	Content  string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	if errs := validateBody(nil, i.Title, i.Content); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput replaces the title and content of an announcement.
type UpdateInput struct {
	AnnouncementID uuid.UUID
	Title          string
	Content        string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.AnnouncementID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if errs = validateBody(errs, i.Title, i.Content); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateBody(errs []domain.FieldError, title, content string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	content = strings.TrimSpace(content)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if len(content) > maxContentLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}
	return errs
}
