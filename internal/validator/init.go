package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// IsEmail reports whether s is a well-formed email address.
func IsEmail(s string) bool {
	return validate.Var(s, "email") == nil
}

// IsPhoneNumber reports whether s is a phone number in E.164 form, e.g. +14155552671.
func IsPhoneNumber(s string) bool {
	return validate.Var(s, "e164") == nil
}
