package core

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateRegistration checks the registration fields. Presence is checked
// first and every missing field is named in a single message; format checks
// run only once presence passes. No side effects.
func ValidateRegistration(input RegisterInput) error {
	var missing []string
	if input.FirstName == "" {
		missing = append(missing, "first name")
	}
	if input.LastName == "" {
		missing = append(missing, "last name")
	}
	if input.Email == "" {
		missing = append(missing, "email")
	}
	if input.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return &ValidationError{Message: "Please enter " + strings.Join(missing, ", ")}
	}

	return validateFormats(input.Email, input.Password)
}

// ValidateSignIn checks the sign-in fields with the same presence-then-format
// ordering as ValidateRegistration.
func ValidateSignIn(input SignInInput) error {
	switch {
	case input.Email == "" && input.Password == "":
		return &ValidationError{Message: "Please enter email and password"}
	case input.Email == "":
		return &ValidationError{Message: "Please enter email"}
	case input.Password == "":
		return &ValidationError{Message: "Please enter password"}
	}

	return validateFormats(input.Email, input.Password)
}

func validateFormats(email, password string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	if !validPassword(password) {
		return ErrWeakPassword
	}
	return nil
}

// validPassword requires at least 8 characters with at least one ASCII
// lowercase letter, one uppercase letter, one digit, and one character that
// is none of those. Go's regexp has no lookaheads, so the rule is expressed
// as a single scan.
func validPassword(password string) bool {
	var length int
	var lower, upper, digit, special bool
	for _, r := range password {
		length++
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			special = true
		}
	}
	return length >= 8 && lower && upper && digit && special
}
