package validators

import (
	"github.com/go-playground/validator/v10"
)

// ValidateLetter accepts a single uppercase letter A-Z.
func ValidateLetter(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return len(value) == 1 && value[0] >= 'A' && value[0] <= 'Z'
}
