package api

import (
	"github.com/go-playground/validator/v10"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/constants"
)

type requestValidator struct {
	validate *validator.Validate
}

func NewValidator() *requestValidator {
	return &requestValidator{validate: validator.New()}
}

func (v *requestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return constants.NewValidationError(err.Error())
	}
	return nil
}
