package httpserver

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/farmtotable/storefront/internal/service"
)

// RequestValidator plugs go-playground/validator into echo so handler
// payloads are checked against the struct tags that replaced the
// store's inert schema validation.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return fmt.Errorf("%w: %v", service.ErrValidation, err)
	}
	return nil
}
