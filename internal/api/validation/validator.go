package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/Jnyanu18/portfolio/internal/api/dto/v1/contact"
	"github.com/Jnyanu18/portfolio/internal/api/sanitization"

	"github.com/go-playground/validator/v10"
)

// FieldError represents a single field-level validation issue.
// The list is returned verbatim to the caller so a client can highlight
// the offending fields.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ContactValidator checks and normalizes contact submissions
type ContactValidator struct {
	validate *validator.Validate
}

// NewContactValidator creates a validator that reports errors under
// the json field names
func NewContactValidator() *ContactValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &ContactValidator{validate: v}
}

// Validate applies the field rules to a submission and, on success,
// returns the normalized form: whitespace trimmed, the email
// lower-cased into its deliverable form, and the remaining fields
// HTML-escaped for safe embedding in email bodies. All rules are
// checked independently; every violation is collected.
func (cv *ContactValidator) Validate(req contact.ContactRequest) (contact.ContactRequest, []FieldError) {
	trimmed := contact.ContactRequest{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}

	if err := cv.validate.Struct(trimmed); err != nil {
		return contact.ContactRequest{}, FormatValidationError(err)
	}

	normalized := contact.ContactRequest{
		Name:    sanitization.EscapeField(trimmed.Name),
		Email:   sanitization.NormalizeEmail(trimmed.Email),
		Subject: sanitization.EscapeField(trimmed.Subject),
		Message: sanitization.EscapeField(trimmed.Message),
	}
	return normalized, nil
}

// FormatValidationError formats validation errors into a user-friendly list
func FormatValidationError(err error) []FieldError {
	var errors []FieldError
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			errors = append(errors, FieldError{
				Field:  e.Field(),
				Reason: reasonFor(e),
			})
		}
	}
	if len(errors) == 0 && err != nil {
		errors = append(errors, FieldError{Field: "", Reason: "invalid payload"})
	}
	return errors
}

func reasonFor(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", e.Param())
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}
