//go:build unit || e2e

package testutil

import (
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

// Dec parses a literal amount and panics on malformed input.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func DecPtr(s string) *decimal.Decimal {
	d := Dec(s)
	return &d
}

// DecimalComparer makes cmp treat 1.5 and 1.50 as equal.
var DecimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})
