// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
)

var (
	timeRegex  = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	userRegex  = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// ValidateTime checks that a time string is a 24-hour "HH:MM" value.
// The classifier assumes pre-validated input, so this runs at the edge.
func ValidateTime(t string) error {
	if !timeRegex.MatchString(t) {
		return fmt.Errorf("time must be in 24-hour HH:MM format")
	}
	return nil
}

// ValidatePassword checks if a password meets minimum requirements
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	// Prevent unreasonable inputs (bcrypt also caps input at 72 bytes)
	if len(password) > 72 {
		return fmt.Errorf("password must not exceed 72 characters")
	}

	return nil
}

// ValidateUsername checks if a username meets requirements
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return fmt.Errorf("username must be at least 3 characters long")
	}

	if len(username) > 64 {
		return fmt.Errorf("username must not exceed 64 characters")
	}

	// Only allow alphanumeric, underscores, and hyphens
	if !userRegex.MatchString(username) {
		return fmt.Errorf("username can only contain letters, numbers, underscores, and hyphens")
	}

	return nil
}

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}

	return nil
}
