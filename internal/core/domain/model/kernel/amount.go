package kernel

import (
	"math"
	"strconv"
	"strings"

	"dispatchdesk/internal/pkg/errs"
)

// ErrAmountIsNegative is returned by NewAmount for values below zero.
var ErrAmountIsNegative = errs.NewValueIsInvalidError("amount must not be negative")

// Amount is a non-negative whole-number sum of money in the desk's currency.
//
// Operators type amounts with currency symbols, spaces and separators
// ("15 000 сум", "7,500"). ParseAmount keeps only the ASCII digits and never
// fails: anything that does not form a number becomes zero.
type Amount struct {
	value int
}

// ZeroAmount is the amount of a record with no sum field.
var ZeroAmount = Amount{}

// MaxParsedAmount is the largest amount ParseAmount accepts. Longer digit
// runs are scanner noise, not money.
const MaxParsedAmount = 999_999_999_999_999

// NewAmount creates an Amount from an integer, rejecting negative values.
func NewAmount(value int) (Amount, error) {
	if value < 0 {
		return Amount{}, ErrAmountIsNegative
	}
	return Amount{value: value}, nil
}

// ParseAmount normalizes free text to an Amount. Every character that is not
// 0-9 is dropped; empty digit strings and values above MaxParsedAmount
// yield zero.
//
// Example:
//
//	kernel.ParseAmount("7 500")   // 7500
//	kernel.ParseAmount("$1,200.") // 1200
//	kernel.ParseAmount("n/a")     // 0
func ParseAmount(raw string) Amount {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	if digits == "" {
		return ZeroAmount
	}

	value, err := strconv.Atoi(digits)
	if err != nil || value > MaxParsedAmount {
		return ZeroAmount
	}
	return Amount{value: value}
}

// Int returns the amount as an int.
func (a Amount) Int() int {
	return a.value
}

// Add returns the sum of both amounts, saturating at math.MaxInt.
func (a Amount) Add(other Amount) Amount {
	if a.value > math.MaxInt-other.value {
		return Amount{value: math.MaxInt}
	}
	return Amount{value: a.value + other.value}
}

// String returns the plain decimal form without grouping, as stored in CSV cells.
func (a Amount) String() string {
	return strconv.Itoa(a.value)
}
