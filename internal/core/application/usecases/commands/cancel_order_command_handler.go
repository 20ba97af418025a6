package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels orders that have not yet shipped.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation operations.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command. The aggregate rejects
// cancellation once the order has shipped or reached a terminal status.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return retryOnConflict(ctx, h.uowFactory, command.OrderID(), func(aggregate *order.Order) error {
		return aggregate.Cancel()
	})
}
