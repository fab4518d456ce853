package cart

import (
	"storefront-pricing/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

type LineSummary struct {
	ProductID    uuid.UUID
	ProductName  string
	Quantity     int
	UnitPrice    decimal.Decimal
	RegularPrice decimal.Decimal
	MemberPrice  decimal.Decimal
	PriceType    pricing.PriceType
	UnitSavings  decimal.Decimal
	LineTotal    decimal.Decimal
	Qualifies    bool
}

// Summary is derived from the cart lines on every call and is never stored.
type Summary struct {
	Lines                     []LineSummary
	UnavailableProductIDs     []uuid.UUID
	ItemCount                 int
	Subtotal                  decimal.Decimal
	MemberSubtotal            decimal.Decimal
	ApplicableSubtotal        decimal.Decimal
	MemberDiscount            decimal.Decimal
	PromotionalDiscount       decimal.Decimal
	QualifyingTotal           decimal.Decimal
	MembershipThreshold       decimal.Decimal
	IsEligibleForMembership   bool
	MembershipProgressPercent decimal.Decimal
	AmountNeededForMembership decimal.Decimal
	Total                     decimal.Decimal
}

func (s *Summary) IsEmpty() bool {
	return s.ItemCount == 0
}

func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}
