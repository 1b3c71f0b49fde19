package user

import (
	"net/mail"
	"strings"

	"salonbook/models"
)

// normalizeEmail lowercases and trims an address and checks that it parses.
func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		return "", ValidationError{Field: "email", Reason: "not a valid address"}
	}
	return email, nil
}

func validateGender(g models.Gender) error {
	if g != "" && !g.Valid() {
		return ValidationError{Field: "gender", Reason: "must be male or female"}
	}
	return nil
}

func validateAge(age int) error {
	if age < 0 || age > 150 {
		return ValidationError{Field: "age", Reason: "must be between 0 and 150"}
	}
	return nil
}

// VerifyPasswordComplexity checks that the password meets the minimum length.
func VerifyPasswordComplexity(pw string) error {
	if len(pw) < 8 {
		return ValidationError{Field: "password", Reason: "must be at least 8 characters long"}
	}
	if len(pw) > 72 {
		return ValidationError{Field: "password", Reason: "must be at most 72 characters long"}
	}
	return nil
}
