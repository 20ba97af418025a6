package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterUserCommand_ValidInput(t *testing.T) {
	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, "ada@example.com", "Str0ng!pass", "Ada", "Lovelace", "+1 555-123-4567")
	require.NoError(t, err)
	assert.Equal(t, userID, cmd.UserID())
	assert.Equal(t, "ada@example.com", cmd.Email())
	assert.Equal(t, "Ada", cmd.FirstName())
	assert.Equal(t, "Lovelace", cmd.LastName())
	assert.Equal(t, "+1 555-123-4567", cmd.Phone())
}

func TestNewRegisterUserCommand_InvalidEmail(t *testing.T) {
	_, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "not-an-email", "Str0ng!pass", "Ada", "Lovelace", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewRegisterUserCommand_WeakPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"too short", "S1!a"},
		{"no uppercase", "str0ng!pass"},
		{"no lowercase", "STR0NG!PASS"},
		{"no number", "Strong!pass"},
		{"no special character", "Str0ngpass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "ada@example.com", tt.password, "Ada", "Lovelace", "")
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestNewRegisterUserCommand_InvalidUserID(t *testing.T) {
	_, err := commands.NewRegisterUserCommand(kernel.UUID{}, "ada@example.com", "Str0ng!pass", "Ada", "Lovelace", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestRegisterUserCommand_ZeroValueFailsValidation(t *testing.T) {
	cmd := commands.RegisterUserCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrRegisterUserCommandIsNotConstructed)
}
