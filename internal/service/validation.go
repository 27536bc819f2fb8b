package service

import (
	"regexp"
	"strings"
	"unicode"

	"docmeister/pkg/appError"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// normalizeEmail trims whitespace and lower-cases the address so that lookups
// and the unique constraint see one canonical form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return appError.BadRequest("invalid email format")
	}
	return nil
}

// password validation function with rules:
// 1) the password is at least 8 characters long
// 2) the password has uppercase letters
// 3) the password has lowercase letters
// 4) the password has digit symbols
func validatePassword(password string) error {
	if len(password) < 8 {
		return appError.BadRequest("invalid password (length below 8 symbols)")
	}

	var (
		lowercase int
		uppercase int
		digits    int
	)

	for _, char := range password {
		switch {
		case unicode.IsLower(char):
			lowercase++
		case unicode.IsUpper(char):
			uppercase++
		case unicode.IsDigit(char):
			digits++
		}
	}

	// combine all errors in one string
	var passwordErrorsString string
	if lowercase == 0 {
		passwordErrorsString += "(lowercase characters are missing) "
	}
	if uppercase == 0 {
		passwordErrorsString += "(uppercase characters are missing) "
	}
	if digits == 0 {
		passwordErrorsString += "(digits are missing) "
	}

	if len(passwordErrorsString) != 0 {
		return appError.BadRequest("invalid password: " + passwordErrorsString)
	}

	return nil
}
