// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can call c.Validate on bound payloads.
package validator

import (
	domainerrors "storefront/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator used by the HTTP server.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks the bound payload against its struct tags.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
