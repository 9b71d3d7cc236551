package church

import (
	"strings"
	"unicode/utf8"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// RegisterInput holds parameters for registering a church with its pastor.
type RegisterInput struct {
	Name       string
	PastorName string
	Phone      string
	Email      string
	Password   string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	required := func(field, value string, max int) {
		v := strings.TrimSpace(value)
		switch {
		case v == "":
			errs = append(errs, domain.FieldError{Field: field, Message: "required"})
		case utf8.RuneCountInString(v) > max:
			errs = append(errs, domain.FieldError{Field: field, Message: "too long"})
		}
	}
	required("name", i.Name, 200)
	required("pastorName", i.PastorName, 255)
	required("phone", i.Phone, 32)
	required("email", i.Email, 254)

	if email := strings.TrimSpace(i.Email); email != "" && !strings.Contains(email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(i.Password) < 6:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	case len(i.Password) > 72:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
