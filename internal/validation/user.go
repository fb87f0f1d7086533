package validation

import (
	"errors"
	"regexp"
)

var (
	ErrMissingUserFields  = errors.New("All fields are required: name, username, email, and password.")
	ErrUsernameTooShort   = errors.New("username must be at least 3 characters")
	ErrUsernameTooLong    = errors.New("username must be at most 30 characters")
	ErrInvalidEmail       = errors.New("email address is not valid")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrMissingLoginFields = errors.New("Both email and password are required to log in.")
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateRegistration(name, username, email, password string) error {
	if name == "" || username == "" || email == "" || password == "" {
		return ErrMissingUserFields
	}
	if len(username) < 3 {
		return ErrUsernameTooShort
	}
	if len(username) > 30 {
		return ErrUsernameTooLong
	}
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	if len(password) < 6 {
		return ErrPasswordTooShort
	}
	return nil
}

func ValidateLogin(email, password string) error {
	if email == "" || password == "" {
		return ErrMissingLoginFields
	}
	return nil
}
