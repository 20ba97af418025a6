package commands

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
	"ordering/internal/pkg/validation"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand requests registration of a new customer account.
// The password is validated for strength here and then discarded: the
// service stores profiles, not credentials, so it never travels past the
// command.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	email     string
	firstName string
	lastName  string
	phone     string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a user. Email and
// password formats are checked here so bad input never reaches the
// aggregate; name and phone rules are enforced again by the aggregate.
func NewRegisterUserCommand(
	userID kernel.UUID,
	email, password, firstName, lastName, phone string,
) (RegisterUserCommand, error) {
	userCommand := RegisterUserCommand{
		firstName: firstName,
		lastName:  lastName,
		phone:     phone,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userCommand.setUserID(userID),
		userCommand.setEmail(email),
		validatePassword(password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return userCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier assigned to the new user.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Email returns the registration email address.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// FirstName returns the user's first name.
func (c RegisterUserCommand) FirstName() string {
	return c.firstName
}

// LastName returns the user's last name.
func (c RegisterUserCommand) LastName() string {
	return c.lastName
}

// Phone returns the optional phone number.
func (c RegisterUserCommand) Phone() string {
	return c.phone
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if !validation.IsValidEmail(email) {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a valid email", email))
	}
	c.email = email
	return nil
}

func validatePassword(password string) error {
	if result := validation.ValidatePassword(password); !result.Valid {
		return errs.NewValueIsInvalidErrorWithCause("password", errors.New(result.Error))
	}
	return nil
}
