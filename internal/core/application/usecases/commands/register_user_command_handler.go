package commands

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/user"
)

// ErrEmailAlreadyRegistered is returned when registering with an email
// that belongs to an existing account.
var ErrEmailAlreadyRegistered = errors.New("email is already registered")

// RegisterUserCommandHandler creates new customer accounts.
//
// Example:
//
//	handler := NewRegisterUserCommandHandler(uowFactory)
//	cmd, _ := NewRegisterUserCommand(kernel.NewUUID(), "a@b.com", "Str0ng!pass", "Ada", "Lovelace", "")
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrEmailAlreadyRegistered) {
//	    // suggest signing in instead
//	}
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for user registration operations.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers a new active user after checking email uniqueness.
// The uniqueness check and the insert run in one transaction, so two
// concurrent registrations with the same email cannot both succeed.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, command RegisterUserCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	aggregate, err := user.NewUser(
		command.UserID(),
		command.Email(),
		command.FirstName(),
		command.LastName(),
		command.Phone(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	exists, err := userRepo.ExistsByEmail(ctx, command.Email())
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrEmailAlreadyRegistered, command.Email())
	}

	if err = userRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
