package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Builds the aggregate in draft status, prices it, and persists it within
// a transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewPricingEngine())
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), customerID, items, address)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now in draft status with computed totals
type CreateOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	pricingEngine services.PricingEngine
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and a
// PricingEngine for computing totals.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	pricingEngine services.PricingEngine,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:    uowFactory,
		pricingEngine: pricingEngine,
	}
}

// Handle processes the order creation command.
// Creates the order in draft status, runs the pricing engine so totals
// are computed before the first save, and persists within a transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		command.OrderID(),
		command.CustomerID(),
		command.Items(),
		command.ShippingAddress(),
	)
	if err != nil {
		return err
	}

	if err = h.pricingEngine.RecomputeTotals(aggregate); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
