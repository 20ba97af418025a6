package order

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder, so its invariants were
	// never checked.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderNotEditable is returned when the item list is changed while
	// the order is not in Draft status.
	ErrOrderNotEditable = errors.New("order items can only be changed while the order is in Draft status")
)

// initialVersion is the optimistic-concurrency version assigned to a new
// order. The persistence adapter bumps it on every successful update.
const initialVersion = 1

// Order is the aggregate root of the ordering domain. It owns its item
// lines, shipping address, monetary totals, and lifecycle status.
//
// Invariants:
//   - the item list is never empty after creation
//   - subtotal, tax, shipping, and total are only set together through
//     ApplyTotals, which enforces total = subtotal + tax + shipping
//   - status only changes along the edges of the transition table
//   - items can only be edited while the order is in Draft
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	items           []Item
	shippingAddress Address
	status          Status

	subtotal kernel.Money
	tax      kernel.Money
	shipping kernel.Money
	total    kernel.Money

	createdAt time.Time
	updatedAt time.Time
	version   int

	isConstructed bool
}

// NewOrder creates an order in Draft status with a validated, non-empty
// item list. Totals are zero until a pricing pass applies them.
func NewOrder(id, customerID kernel.UUID, items []Item, shippingAddress Address) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:        Draft,
		createdAt:     now,
		updatedAt:     now,
		version:       initialVersion,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	order.shippingAddress = shippingAddress
	return order, nil
}

// RestoreOrder reconstructs an order from persistence, re-validating every
// invariant the constructor enforces plus the totals invariant.
func RestoreOrder(
	id, customerID kernel.UUID,
	items []Item,
	shippingAddress Address,
	status Status,
	subtotal, tax, shipping, total kernel.Money,
	createdAt, updatedAt time.Time,
	version int,
) (*Order, error) {
	order := &Order{
		shippingAddress: shippingAddress,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
		order.setStatus(status),
		order.setVersion(version),
	); err != nil {
		return nil, err
	}

	if err := order.ApplyTotals(subtotal, tax, shipping, total); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns a copy of the item lines in their original sequence.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// ShippingAddress returns the delivery destination.
func (o *Order) ShippingAddress() Address {
	return o.shippingAddress
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Subtotal returns the sum of the per-line-rounded line totals.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// Tax returns the tax computed on the subtotal.
func (o *Order) Tax() kernel.Money {
	return o.tax
}

// Shipping returns the shipping cost tier applied to the order.
func (o *Order) Shipping() kernel.Money {
	return o.shipping
}

// Total returns subtotal + tax + shipping.
func (o *Order) Total() kernel.Money {
	return o.total
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic-concurrency version loaded from storage.
func (o *Order) Version() int {
	return o.version
}

// IncrementVersion records a successful optimistic write. Only persistence
// adapters call this, after the stored version check passed.
func (o *Order) IncrementVersion() {
	o.version++
}

// ApplyTotals sets the four monetary fields together. The pricing engine is
// the only intended caller. Fails when any amount is negative or when
// total does not equal subtotal + tax + shipping.
func (o *Order) ApplyTotals(subtotal, tax, shipping, total kernel.Money) error {
	for name, amount := range map[string]kernel.Money{
		"subtotal": subtotal,
		"tax":      tax,
		"shipping": shipping,
		"total":    total,
	} {
		if amount.IsNegative() {
			return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is negative", amount))
		}
	}

	if !total.IsEqual(subtotal.Add(tax).Add(shipping)) {
		return errs.NewValueIsInvalidErrorWithCause(
			"total",
			fmt.Errorf("%s does not equal subtotal %s + tax %s + shipping %s", total, subtotal, tax, shipping),
		)
	}

	o.subtotal = subtotal
	o.tax = tax
	o.shipping = shipping
	o.total = total
	return nil
}

// TransitionTo moves the order along one edge of the lifecycle graph and
// touches the modification timestamp. On a rejected edge the order is left
// unmodified and an InvalidTransitionError is returned.
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Cancel transitions the order to Cancelled. Fails with an
// InvalidTransitionError once the order is Shipped, Delivered, or
// already Cancelled.
func (o *Order) Cancel() error {
	return o.TransitionTo(Cancelled)
}

// AddItem appends a new line to a Draft order. The caller is responsible
// for re-running pricing afterwards.
func (o *Order) AddItem(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if o.status != Draft {
		return fmt.Errorf("%w: status is %s", ErrOrderNotEditable, o.status)
	}

	for _, existing := range o.items {
		if existing.ProductID() == item.ProductID() {
			return errs.NewValueIsInvalidErrorWithCause(
				"productID",
				fmt.Errorf("order already contains product %s", item.ProductID()),
			)
		}
	}

	o.items = append(o.items, item)
	o.touch()
	return nil
}

// RemoveItem removes the line for the given product from a Draft order.
// The last remaining line cannot be removed; the item list stays non-empty.
func (o *Order) RemoveItem(productID string) error {
	if o.status != Draft {
		return fmt.Errorf("%w: status is %s", ErrOrderNotEditable, o.status)
	}

	index := -1
	for i, item := range o.items {
		if item.ProductID() == productID {
			index = i
			break
		}
	}

	if index < 0 {
		return errs.NewObjectNotFoundError("productID", productID)
	}

	if len(o.items) == 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order items",
			errors.New("an order must keep at least one item"),
		)
	}

	o.items = append(o.items[:index], o.items[index+1:]...)
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < initialVersion {
		return errs.NewValueIsInvalidErrorWithCause(
			"version",
			fmt.Errorf("%d is less than %d", version, initialVersion),
		)
	}
	o.version = version
	return nil
}
