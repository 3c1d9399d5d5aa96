package marina

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency of every balance in the marina.
const Currency = "USD"

// Money represents a monetary value in the marina currency.
//
// Values are exact: monthly charges and payments never accumulate rounding
// errors. Rounding to cents only happens when the value is written.
type Money struct {
	value decimal.Decimal // as major unit value
}

// M creates a Money from any numeric value.
func M[T float64 | int | int64 | decimal.Decimal](value T) Money {
	switch v := any(value).(type) {
	case float64:
		return Money{value: decimal.NewFromFloat(v)}
	case int:
		return Money{value: decimal.NewFromInt(int64(v))}
	case int64:
		return Money{value: decimal.NewFromInt(v)}
	case decimal.Decimal:
		return Money{value: v}
	}
	panic("unreachable")
}

// ParseMoney parses a decimal amount like "150.00" or "12.5".
func ParseMoney(s string) (Money, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: v}, nil
}

// currency returns the full go-money currency description.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, Currency).Currency()
}

// String returns the money formatted for humans, like "$1,020.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Fixed returns the amount with exactly two fractional digits and no
// currency symbol, as written in the boats file.
func (m Money) Fixed() string               { return m.value.StringFixed(2) }

// Simple wrapper around decimal.Decimal

func (m Money) Decimal() decimal.Decimal    { return m.value }
func (m Money) Equal(n Money) bool          { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                { return m.value.IsZero() }
func (m Money) IsPositive() bool            { return m.value.IsPositive() }
func (m Money) IsNegative() bool            { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool       { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool    { return m.value.GreaterThan(n.value) }
func (m Money) Add(n Money) Money           { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money           { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(n decimal.Decimal) Money { return Money{value: m.value.Mul(n)} }
func (m Money) Neg() Money                  { return Money{value: m.value.Neg()} }
