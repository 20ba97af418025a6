package validation_test

import (
	"testing"

	"ordering/internal/pkg/validation"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	testCases := []struct {
		email string
		valid bool
	}{
		{"test@example.com", true},
		{"user.name@domain.org", true},
		{"a+b@test.co", true},
		{"invalidemail", false},
		{"test@", false},
		{"@domain.com", false},
		{"test@domain", false},
		{"", false},
	}

	for _, tc := range testCases {
		t.Run(tc.email, func(t *testing.T) {
			assert.Equal(t, tc.valid, validation.IsValidEmail(tc.email))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	t.Run("should accept valid password", func(t *testing.T) {
		result := validation.ValidatePassword("ValidPass1!")

		assert.True(t, result.Valid)
		assert.Empty(t, result.Error)
	})

	t.Run("should report first failing rule", func(t *testing.T) {
		testCases := []struct {
			name     string
			password string
			errPart  string
		}{
			{"too short", "Short1!", "8 characters"},
			{"no uppercase", "lowercase1!", "uppercase"},
			{"no lowercase", "UPPERCASE1!", "lowercase"},
			{"no number", "NoNumber!", "number"},
			{"no special character", "NoSpecial1", "special"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				result := validation.ValidatePassword(tc.password)

				assert.False(t, result.Valid)
				assert.Contains(t, result.Error, tc.errPart)
			})
		}
	})
}

func TestIsValidPhone(t *testing.T) {
	testCases := []struct {
		phone string
		valid bool
	}{
		{"1234567890", true},
		{"123-456-7890", true},
		{"+1 234 567 8900", true},
		{"+44 123 456 7890", true},
		{"12345", false},
		{"phone number", false},
		{"", false},
	}

	for _, tc := range testCases {
		t.Run(tc.phone, func(t *testing.T) {
			assert.Equal(t, tc.valid, validation.IsValidPhone(tc.phone))
		})
	}
}
