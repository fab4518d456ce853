package membership

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidThreshold = errors.New("membership threshold must be a positive amount")

// DefaultThresholdAmount applies when neither the store nor the environment
// provides a usable threshold.
var DefaultThresholdAmount = decimal.NewFromInt(80)

type Threshold struct {
	amount decimal.Decimal
}

func NewThreshold(amount decimal.Decimal) (Threshold, error) {
	if !amount.IsPositive() {
		return Threshold{}, ErrInvalidThreshold
	}
	return Threshold{amount: amount}, nil
}

func DefaultThreshold() Threshold {
	return Threshold{amount: DefaultThresholdAmount}
}

func ParseThreshold(s string) (Threshold, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Threshold{}, ErrInvalidThreshold
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Threshold{}, ErrInvalidThreshold
	}
	return NewThreshold(d)
}

// ParseThresholdOr never fails; an unusable value yields fallback.
func ParseThresholdOr(s string, fallback Threshold) Threshold {
	t, err := ParseThreshold(s)
	if err != nil {
		return fallback
	}
	return t
}

// Amount returns the threshold, substituting the default for the zero value.
func (t Threshold) Amount() decimal.Decimal {
	if !t.amount.IsPositive() {
		return DefaultThresholdAmount
	}
	return t.amount
}

func (t Threshold) IsZero() bool {
	return !t.amount.IsPositive()
}
