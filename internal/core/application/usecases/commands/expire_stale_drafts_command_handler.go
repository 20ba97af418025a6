package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// ExpireStaleDraftsCommandHandler cancels draft orders abandoned before
// the command's cutoff. Each draft is cancelled in its own transaction;
// an order that loses an optimistic-concurrency race is skipped rather
// than retried, since the competing write proves the draft is not
// abandoned after all.
type ExpireStaleDraftsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewExpireStaleDraftsCommandHandler creates a handler for draft expiry operations.
func NewExpireStaleDraftsCommandHandler(uowFactory OrderUoWFactory) ExpireStaleDraftsCommandHandler {
	return ExpireStaleDraftsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels all stale drafts and returns how many were expired.
func (h ExpireStaleDraftsCommandHandler) Handle(ctx context.Context, command ExpireStaleDraftsCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	stale, err := h.listStaleDrafts(ctx, command)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, draft := range stale {
		err := applyOnce(ctx, h.uowFactory, draft.ID(), func(aggregate *order.Order) error {
			// The listing ran in an earlier transaction, so the draft may
			// have moved on by now. Treat that like a lost race.
			if aggregate.Status() != order.Draft {
				return ports.ErrConcurrentModification
			}
			return aggregate.Cancel()
		})
		if err != nil {
			if errors.Is(err, ports.ErrConcurrentModification) {
				continue
			}
			return expired, err
		}
		expired++
	}

	return expired, nil
}

func (h ExpireStaleDraftsCommandHandler) listStaleDrafts(
	ctx context.Context,
	command ExpireStaleDraftsCommand,
) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OrderRepository().GetDraftsNotUpdatedSince(ctx, command.Cutoff())
}
