package validator

import (
	"context"
	"ctchen222/user-auth/internal/api/models"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Field error messages, reported in the order the checks run.
// The minimum name length enforced is 3 even though the message says 4.
const (
	MsgFirstNameRequired = "first name is required"
	MsgFirstNameTooShort = "The first name must be at least 4 characters long."
	MsgFirstNameTooLong  = "The first name must not exceed 64 characters."
	MsgLastNameRequired  = "last name is required"
	MsgLastNameTooShort  = "The last name must be at least 4 characters long."
	MsgLastNameTooLong   = "The last name must not exceed 64 characters."
	MsgEmailRequired     = "Email address is required"
	MsgEmailInvalid      = "The email address format is invalid."
	MsgEmailTaken        = "This Email is taken"
	MsgPasswordRequired  = "Password is required."
	MsgPasswordWeak      = "Password must be at least 8 characters long and include a number, an uppercase letter, a lowercase letter, and a special character ($, @, #, &, or !)."
	MsgPhoneRequired     = "Phone number is required."
	MsgPhoneInvalid      = "The phone number format is invalid."
)

const (
	nameMinLength     = 3
	nameMaxLength     = 64
	passwordMinLength = 8
	passwordSpecials  = "$@#&!"
)

// EmailChecker reports whether an email address already belongs to a user.
type EmailChecker interface {
	EmailExists(ctx context.Context, email string) (bool, error)
}

// ValidateUserInput checks every registration field and returns one message per
// failing field, in field order. An empty list means the input is valid.
// The returned error is non-nil only when the uniqueness lookup fails.
func ValidateUserInput(ctx context.Context, in *models.RegisterRequest, users EmailChecker) ([]string, error) {
	errorsList := []string{}

	if msg, ok := checkName(in.FirstName, MsgFirstNameRequired, MsgFirstNameTooShort, MsgFirstNameTooLong); !ok {
		errorsList = append(errorsList, msg)
	}
	if msg, ok := checkName(in.LastName, MsgLastNameRequired, MsgLastNameTooShort, MsgLastNameTooLong); !ok {
		errorsList = append(errorsList, msg)
	}

	if in.Email == "" {
		errorsList = append(errorsList, MsgEmailRequired)
	} else if !IsEmail(in.Email) {
		errorsList = append(errorsList, MsgEmailInvalid)
	} else {
		taken, err := users.EmailExists(ctx, in.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if taken {
			errorsList = append(errorsList, MsgEmailTaken)
		}
	}

	if in.Password == "" {
		errorsList = append(errorsList, MsgPasswordRequired)
	} else if !IsStrongPassword(in.Password) {
		errorsList = append(errorsList, MsgPasswordWeak)
	}

	if in.PhoneNumber == "" {
		errorsList = append(errorsList, MsgPhoneRequired)
	} else if !IsPhoneNumber(in.PhoneNumber) {
		errorsList = append(errorsList, MsgPhoneInvalid)
	}

	return errorsList, nil
}

func checkName(name, required, tooShort, tooLong string) (string, bool) {
	n := utf8.RuneCountInString(name)
	switch {
	case name == "":
		return required, false
	case n < nameMinLength:
		return tooShort, false
	case n > nameMaxLength:
		return tooLong, false
	}
	return "", true
}

// IsStrongPassword reports whether password has at least 8 characters including a
// digit, a lowercase letter, an uppercase letter and one of $ @ # & !.
func IsStrongPassword(password string) bool {
	if utf8.RuneCountInString(password) < passwordMinLength {
		return false
	}

	var hasDigit, hasLower, hasUpper, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		}
	}
	return hasDigit && hasLower && hasUpper && hasSpecial
}
