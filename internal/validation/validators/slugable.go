package validators

import (
	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
)

// ValidateSlugable accepts values that keep at least one character once slugified.
func ValidateSlugable(fl validator.FieldLevel) bool {
	return slug.Make(fl.Field().String()) != ""
}
