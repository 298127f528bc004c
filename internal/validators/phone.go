package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Digits with optional leading "+" and spaces, dashes or parentheses;
// 3 to 21 characters, so short local numbers pass.
var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()\-]{2,19}$`)

// Phone validates a loosely formatted phone number.
func Phone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

// New returns a validator with the custom tags registered.
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("phone", Phone)
	return v
}
