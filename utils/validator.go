// utils/validator.go - Input validation
package utils

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// Korean mobile/landline numbers, digits with optional dashes.
	phoneRegex    = regexp.MustCompile(`^0\d{1,2}-?\d{3,4}-?\d{4}$`)
	unsafeFileTok = regexp.MustCompile(`[^0-9A-Za-z가-힣._-]+`)
)

// ValidateEmail checks if email is valid
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePhone checks a Korean phone number such as 010-1234-5678.
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(strings.TrimSpace(phone))
}

// ValidatePassword checks password strength
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters"
	}
	return true, ""
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "\x00", "")
	return input
}

// SanitizeFilename collapses anything outside letters, digits, Hangul, dots,
// dashes and underscores so the name is safe as a storage key.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = unsafeFileTok.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "file"
	}
	return name
}

// DefaultString returns value unless it is empty.
func DefaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
