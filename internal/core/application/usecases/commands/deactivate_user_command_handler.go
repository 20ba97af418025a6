package commands

import (
	"context"
)

// DeactivateUserCommandHandler deactivates customer accounts.
type DeactivateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewDeactivateUserCommandHandler creates a handler for user deactivation operations.
func NewDeactivateUserCommandHandler(uowFactory UserUoWFactory) DeactivateUserCommandHandler {
	return DeactivateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the user's account inactive.
func (h DeactivateUserCommandHandler) Handle(ctx context.Context, command DeactivateUserCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	aggregate, err := userRepo.Get(ctx, command.UserID())
	if err != nil {
		return err
	}

	if err = aggregate.Deactivate(); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
