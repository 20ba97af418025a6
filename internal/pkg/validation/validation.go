// Package validation provides stateless predicates for user registration
// fields. The rules are plain string and regexp checks; richer identity
// concerns such as deliverability or credential storage live outside this
// service.
package validation

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	phonePattern = regexp.MustCompile(`^(\+\d{1,3}[\s\-]?)?\d{3}[\s\-]?\d{3}[\s\-]?\d{4}$`)
)

const minPasswordLength = 8

// IsValidEmail reports whether the given string has a local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPhone accepts 10-digit numbers with optional dash or space
// separators and an optional leading country code.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// PasswordResult reports the outcome of a password strength check.
// Error names the first rule that failed and is empty when Valid is true.
type PasswordResult struct {
	Valid bool
	Error string
}

// ValidatePassword checks password strength rules in a fixed order:
// minimum length, uppercase, lowercase, digit, special character.
func ValidatePassword(password string) PasswordResult {
	if len(password) < minPasswordLength {
		return PasswordResult{Error: "password must be at least 8 characters"}
	}
	if !containsFunc(password, unicode.IsUpper) {
		return PasswordResult{Error: "password must contain an uppercase letter"}
	}
	if !containsFunc(password, unicode.IsLower) {
		return PasswordResult{Error: "password must contain a lowercase letter"}
	}
	if !containsFunc(password, unicode.IsDigit) {
		return PasswordResult{Error: "password must contain a number"}
	}
	if !strings.ContainsAny(password, "!@#$%^&*()-_=+[]{};:'\",.<>/?\\|`~") {
		return PasswordResult{Error: "password must contain a special character"}
	}
	return PasswordResult{Valid: true}
}

func containsFunc(s string, f func(rune) bool) bool {
	for _, r := range s {
		if f(r) {
			return true
		}
	}
	return false
}
