package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem factory, so its bounds were never checked.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

const (
	minDiscountPercent = 0
	maxDiscountPercent = 100
)

// Item is one priced line of an order. It is immutable once constructed
// and owned exclusively by the order that contains it.
//
// Invariants enforced by the constructor:
//   - product ID is not empty
//   - quantity is positive
//   - unit price is not negative
//   - discount percent lies in [0, 100]
type Item struct { //nolint:recvcheck //pointer receivers used for construction only
	productID       string
	quantity        int
	unitPrice       kernel.Money
	discountPercent int

	guard guard.ConstructorGuard
}

// NewItem creates a validated order line.
func NewItem(productID string, quantity int, unitPrice kernel.Money, discountPercent int) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
		item.setDiscountPercent(discountPercent),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the identifier of the purchased product.
func (i Item) ProductID() string {
	return i.productID
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit before discount.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// DiscountPercent returns the line discount as a whole percentage.
func (i Item) DiscountPercent() int {
	return i.discountPercent
}

// LineTotal returns the price contribution of this line:
// unitPrice * quantity * (1 - discountPercent/100), rounded to currency
// precision. Rounding happens here, at the line level, so that summing
// lines never accumulates sub-cent drift.
func (i Item) LineTotal() kernel.Money {
	discountFactor := decimal.NewFromInt(int64(maxDiscountPercent - i.discountPercent)).
		Div(decimal.NewFromInt(maxDiscountPercent))

	return i.unitPrice.MulInt(i.quantity).Mul(discountFactor).Round2()
}

func (i *Item) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%s is negative", unitPrice),
		)
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setDiscountPercent(discountPercent int) error {
	if discountPercent < minDiscountPercent || discountPercent > maxDiscountPercent {
		return errs.NewValueIsOutOfRangeError(
			"discountPercent", discountPercent, minDiscountPercent, maxDiscountPercent,
		)
	}
	i.discountPercent = discountPercent
	return nil
}
