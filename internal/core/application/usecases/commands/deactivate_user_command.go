package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrDeactivateUserCommandIsNotConstructed = errors.New(
	"DeactivateUserCommand must be created via NewDeactivateUserCommand constructor",
)

// DeactivateUserCommand requests deactivation of a customer account.
type DeactivateUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivateUserCommand creates a command to deactivate a user.
func NewDeactivateUserCommand(userID kernel.UUID) (DeactivateUserCommand, error) {
	if err := userID.Validate(); err != nil {
		return DeactivateUserCommand{}, err
	}

	return DeactivateUserCommand{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeactivateUserCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateUserCommandIsNotConstructed)
}

// UserID returns the identifier of the account to deactivate.
func (c DeactivateUserCommand) UserID() kernel.UUID {
	return c.userID
}
