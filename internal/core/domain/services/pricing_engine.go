package services

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Pricing policy constants. Rates and tiers are fixed business rules, not
// configuration.
var (
	// taxRate is the flat tax applied to the subtotal.
	taxRate = decimal.RequireFromString("0.08")

	// standardShippingFee is charged below the free-shipping threshold.
	standardShippingFee = kernel.NewMoney(decimal.RequireFromString("9.99"))

	// freeShippingThreshold is the subtotal at which shipping becomes
	// free. The boundary itself ships free.
	freeShippingThreshold = kernel.NewMoney(decimal.RequireFromString("100.00"))
)

// PricingEngine is a domain service that derives subtotal, tax, shipping,
// and total for an order from its items.
//
// Rounding policy:
//   - each line total is rounded to currency precision before summation
//   - the subtotal is the exact sum of the rounded lines
//   - tax is rounded once, after applying the rate to the subtotal
//   - the total is an exact sum of already-rounded operands
//
// Rounding per line instead of per order avoids sub-cent drift across the
// summation and must not change; downstream systems reconcile against it.
//
// Example usage:
//
//	engine := NewPricingEngine()
//	if err := engine.RecomputeTotals(order); err != nil {
//	    // Handle a malformed item set
//	}
//	// order.Total() now equals subtotal + tax + shipping
type PricingEngine struct{}

// NewPricingEngine creates a new PricingEngine instance.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// RecomputeTotals derives the four monetary fields from the order's items
// and applies them to the order. Items and status are left untouched, no
// I/O happens, and the computation is pure: repeated calls on an unchanged
// item set produce identical results, so re-pricing after item edits is
// always safe.
//
// Item bounds are re-checked defensively even though item constructors
// enforce them; a violation is reported as an invalid-value error.
func (PricingEngine) RecomputeTotals(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	items := o.Items()
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	subtotal := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		subtotal = subtotal.Add(item.LineTotal())
	}

	tax := subtotal.Mul(taxRate).Round2()

	shipping := kernel.ZeroMoney()
	if subtotal.LessThan(freeShippingThreshold) {
		shipping = standardShippingFee
	}

	total := subtotal.Add(tax).Add(shipping)

	return o.ApplyTotals(subtotal, tax, shipping, total)
}
