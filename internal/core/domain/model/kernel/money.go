package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// currencyScale is the number of fractional digits carried by a currency
// representation. Rounding to this scale happens only at the computation
// steps that call Round2, never implicitly inside arithmetic.
const currencyScale = 2

// Money is an immutable fixed-point currency amount built on
// decimal.Decimal. Arithmetic is exact; callers decide where currency
// rounding applies via Round2. The zero value is a valid 0.00 amount.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from an exact decimal amount.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// NewMoneyFromString parses a decimal string such as "9.99" into Money.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", fmt.Errorf("%q is not a decimal", s))
	}
	return Money{amount: amount}, nil
}

// ZeroMoney returns the 0.00 amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the exact sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the exact difference of two amounts.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MulInt returns the exact product of the amount and an integer factor.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// Mul returns the exact product of the amount and a decimal factor,
// e.g. a tax rate or a discount multiplier.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor)}
}

// Round2 rounds the amount to currency precision using half-up rounding.
func (m Money) Round2() Money {
	return Money{amount: m.amount.Round(currencyScale)}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// LessThan reports whether the amount is strictly below other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// IsEqual reports numeric equality regardless of scale, so 95 equals 95.00.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying exact decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(currencyScale)
}
