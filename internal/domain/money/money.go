package money

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var ErrNegativeAmount = errors.New("money cannot be negative")

// Money is an amount in whole currency units (rupiah has no minor unit in practice).
type Money struct {
	amount int64
}

func New(amount int64) Money {
	return Money{amount: amount}
}

func NewNonNegative(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: amount}, nil
}

// FromFloat rounds to the nearest whole unit.
func FromFloat(f float64) Money {
	return Money{amount: int64(math.Round(f))}
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) Float64() float64 {
	return float64(m.amount)
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

func (m Money) Multiply(n int) Money {
	return Money{amount: m.amount * int64(n)}
}

func (m Money) Equal(other Money) bool {
	return m.amount == other.amount
}

func (m Money) IsNegative() bool {
	return m.amount < 0
}

// Format renders the amount with thousands separators, e.g. "IDR 1.500.000".
func (m Money) Format(currency string) string {
	digits := strconv.FormatInt(m.amount, 10)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(currency + " " + sign + b.String())
}
