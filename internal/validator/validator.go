// Package validator wraps go-playground/validator for the client's
// pre-flight checks. Validation here is advisory fail-fast only: it saves a
// round-trip, but the backend remains the source of truth and may reject
// with stricter rules.
package validator

import (
	"strings"

	domainerrors "shopmate/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator validates input DTOs against their struct tags.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Struct validates a tagged struct. On failure it returns
// ErrValidationFailed with one readable line per offending field; no
// network call may happen after that.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	lines := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		lines = append(lines, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(lines, "; "))
}

// Var validates a single value against a tag expression, for flows that
// take a bare string rather than a DTO.
func (v *Validator) Var(value any, tag string) error {
	err := v.validate.Var(value, tag)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	lines := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		lines = append(lines, "value failed the "+fe.Tag()+" rule")
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(lines, "; "))
}

// describe renders one field error in user terms.
func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		if fe.Kind().String() == "string" {
			return field + " must be at least " + fe.Param() + " characters"
		}

		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param()
	default:
		return field + " is invalid"
	}
}
