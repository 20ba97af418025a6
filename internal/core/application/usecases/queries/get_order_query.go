// Package queries contains read-only operations that bypass the domain
// model and read projection data straight from the database. Queries
// never mutate state and never load aggregates.
package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its items.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order by its identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the read model for a single order.
type GetOrderQueryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Status     string
	Address    AddressResponse
	Items      []OrderItemResponse
	Subtotal   kernel.Money
	Tax        kernel.Money
	Shipping   kernel.Money
	Total      kernel.Money
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Version    int
}

// AddressResponse is the read model for a shipping address.
type AddressResponse struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// OrderItemResponse is the read model for one order line.
type OrderItemResponse struct {
	ProductID       string
	Quantity        int
	UnitPrice       kernel.Money
	DiscountPercent int
	LineTotal       kernel.Money
}
