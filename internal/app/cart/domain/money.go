package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value with exact decimal arithmetic.
// Money is immutable - all operations return new instances.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates Money from an integer number of minor units and an exponent.
// For example: NewMoney(1999, -2) represents 19.99.
func NewMoney(value int64, exp int32) *Money {
	return &Money{amount: decimal.New(value, exp)}
}

// NewMoneyFromDecimal creates Money from a decimal string such as "19.99".
func NewMoneyFromDecimal(s string) (*Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid decimal format: %s", s)
	}
	return &Money{amount: d}, nil
}

// Zero returns a Money instance representing zero.
func Zero() *Money {
	return &Money{amount: decimal.Zero}
}

// Add returns a new Money that is the sum of m and other.
func (m *Money) Add(other *Money) *Money {
	return &Money{amount: m.amount.Add(other.amount)}
}

// MultiplyByQuantity returns m scaled by a whole quantity.
func (m *Money) MultiplyByQuantity(quantity int) *Money {
	return &Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

func (m *Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m *Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Equals returns true if m equals other.
func (m *Money) Equals(other *Money) bool {
	if other == nil {
		return false
	}
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal value.
func (m *Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount rounded to cents, e.g. "19.98".
func (m *Money) String() string {
	return m.amount.StringFixed(2)
}

// FloatString returns a decimal string representation with the specified precision.
func (m *Money) FloatString(precision int32) string {
	return m.amount.StringFixed(precision)
}
