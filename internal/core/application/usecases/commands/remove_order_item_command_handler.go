package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
)

// RemoveOrderItemCommandHandler removes a line from a draft order and
// reprices the aggregate before saving.
type RemoveOrderItemCommandHandler struct {
	uowFactory    OrderUoWFactory
	pricingEngine services.PricingEngine
}

// NewRemoveOrderItemCommandHandler creates a handler for item removal operations.
func NewRemoveOrderItemCommandHandler(
	uowFactory OrderUoWFactory,
	pricingEngine services.PricingEngine,
) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{
		uowFactory:    uowFactory,
		pricingEngine: pricingEngine,
	}
}

// Handle processes the item removal command. The aggregate rejects
// removal outside draft status and protects the last remaining line.
func (h RemoveOrderItemCommandHandler) Handle(ctx context.Context, command RemoveOrderItemCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return retryOnConflict(ctx, h.uowFactory, command.OrderID(), func(aggregate *order.Order) error {
		if err := aggregate.RemoveItem(command.ProductID()); err != nil {
			return err
		}
		return h.pricingEngine.RecomputeTotals(aggregate)
	})
}
