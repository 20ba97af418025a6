package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
)

// AddOrderItemCommandHandler appends a line to a draft order and
// reprices the aggregate before saving.
type AddOrderItemCommandHandler struct {
	uowFactory    OrderUoWFactory
	pricingEngine services.PricingEngine
}

// NewAddOrderItemCommandHandler creates a handler for item addition operations.
func NewAddOrderItemCommandHandler(
	uowFactory OrderUoWFactory,
	pricingEngine services.PricingEngine,
) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory:    uowFactory,
		pricingEngine: pricingEngine,
	}
}

// Handle processes the item addition command. Only draft orders accept
// new items; totals are recomputed in the same transaction as the edit.
func (h AddOrderItemCommandHandler) Handle(ctx context.Context, command AddOrderItemCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return retryOnConflict(ctx, h.uowFactory, command.OrderID(), func(aggregate *order.Order) error {
		if err := aggregate.AddItem(command.Item()); err != nil {
			return err
		}
		return h.pricingEngine.RecomputeTotals(aggregate)
	})
}
