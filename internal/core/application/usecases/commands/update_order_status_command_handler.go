package commands

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// maxUpdateAttempts bounds the optimistic-concurrency retry loop in the
// order mutation handlers. Each attempt refetches the aggregate, so a
// conflict simply means another writer got there first.
const maxUpdateAttempts = 3

// UpdateOrderStatusCommandHandler moves an order through its lifecycle.
// Concurrent writers are resolved optimistically: a version conflict on
// save triggers a refetch and a bounded number of retries.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, order.Confirmed)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrInvalidTransition):
//	    log.Println("Transition not allowed from current status")
//	case errors.Is(err, ports.ErrConcurrentModification):
//	    log.Println("Lost the race three times in a row")
//	case err != nil:
//	    log.Printf("Status update failed: %v", err)
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status change operations.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// The aggregate enforces the transition table; the handler only retries
// optimistic-concurrency conflicts.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, command UpdateOrderStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return retryOnConflict(ctx, h.uowFactory, command.OrderID(), func(aggregate *order.Order) error {
		return aggregate.TransitionTo(command.TargetStatus())
	})
}

// retryOnConflict runs mutate against a freshly fetched aggregate inside
// a transaction, retrying up to maxUpdateAttempts times when the save
// loses an optimistic-concurrency race. Domain errors from mutate abort
// immediately: only version conflicts are worth a refetch, and each
// retry sees the state the winning writer left behind.
func retryOnConflict(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	mutate func(aggregate *order.Order) error,
) error {
	var lastErr error

	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		lastErr = applyOnce(ctx, uowFactory, orderID, mutate)
		if lastErr == nil {
			return nil
		}
		if !errors.Is(lastErr, ports.ErrConcurrentModification) {
			return lastErr
		}
	}

	return fmt.Errorf("update order %s after %d attempts: %w", orderID, maxUpdateAttempts, lastErr)
}

func applyOnce(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	mutate func(aggregate *order.Order) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = mutate(aggregate); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
