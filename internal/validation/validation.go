package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/sergeii/enigma/internal/validation/validators"
)

func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation("letter", validators.ValidateLetter); err != nil {
		return nil, err
	}
	if err := validate.RegisterValidation("slugable", validators.ValidateSlugable); err != nil {
		return nil, err
	}
	return validate, nil
}
