package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand requests appending a line to a draft order.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	item    order.Item

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to add an item to an order.
func NewAddOrderItemCommand(orderID kernel.UUID, item order.Item) (AddOrderItemCommand, error) {
	itemCommand := AddOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setOrderID(orderID),
		itemCommand.setItem(item),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to extend.
func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Item returns the line to append.
func (c AddOrderItemCommand) Item() order.Item {
	return c.item
}

func (c *AddOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AddOrderItemCommand) setItem(item order.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	c.item = item
	return nil
}
