// Package validator adapts go-playground validation to Echo.
package validator

import (
	domainerrors "blog/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator implements echo.Validator on top of struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the HTTP server.
func New() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks the bound request struct and surfaces failures as a
// validation error carrying the validator's description.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
