package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrRemoveOrderItemCommandIsNotConstructed = errors.New(
	"RemoveOrderItemCommand must be created via NewRemoveOrderItemCommand constructor",
)

// RemoveOrderItemCommand requests removing a line from a draft order.
type RemoveOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID string

	guard guard.ConstructorGuard
}

// NewRemoveOrderItemCommand creates a command to remove an item from an order.
func NewRemoveOrderItemCommand(orderID kernel.UUID, productID string) (RemoveOrderItemCommand, error) {
	itemCommand := RemoveOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setOrderID(orderID),
		itemCommand.setProductID(productID),
	); err != nil {
		return RemoveOrderItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to shrink.
func (c RemoveOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the product whose line should be removed.
func (c RemoveOrderItemCommand) ProductID() string {
	return c.productID
}

func (c *RemoveOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RemoveOrderItemCommand) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}
	c.productID = productID
	return nil
}
