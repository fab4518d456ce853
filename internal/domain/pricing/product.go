package pricing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product carries the catalog-owned facts the pricing engine reads.
// It is an input only; nothing in this package mutates it.
type Product struct {
	ID                        uuid.UUID
	Name                      string
	RegularPrice              decimal.Decimal
	MemberPrice               decimal.Decimal
	IsPromotional             bool
	PromotionalPrice          *decimal.Decimal
	PromotionStartDate        *time.Time
	PromotionEndDate          *time.Time
	IsQualifyingForMembership bool
	MemberOnlyUntil           *time.Time
	EarlyAccessStart          *time.Time
}

// PromotionActiveAt reports whether the promotional tier applies at t.
// Both window bounds are inclusive; a missing bound is unbounded on that side.
func (p Product) PromotionActiveAt(t time.Time) bool {
	if !p.IsPromotional || p.PromotionalPrice == nil {
		return false
	}
	if p.PromotionStartDate != nil && p.PromotionEndDate != nil &&
		p.PromotionEndDate.Before(*p.PromotionStartDate) {
		return false
	}
	if p.PromotionStartDate != nil && t.Before(*p.PromotionStartDate) {
		return false
	}
	if p.PromotionEndDate != nil && t.After(*p.PromotionEndDate) {
		return false
	}
	return true
}

func (p Product) MemberOnlyAt(t time.Time) bool {
	return p.MemberOnlyUntil != nil && t.Before(*p.MemberOnlyUntil)
}

func (p Product) EarlyAccessOpenAt(t time.Time) bool {
	return p.EarlyAccessStart == nil || !t.Before(*p.EarlyAccessStart)
}

func (p Product) promotionalPriceUsable() bool {
	if p.PromotionalPrice == nil {
		return false
	}
	pp := *p.PromotionalPrice
	return !pp.IsNegative() && pp.LessThanOrEqual(p.RegularPrice)
}

func (p Product) memberPriceUsable() bool {
	return !p.MemberPrice.IsNegative() && p.MemberPrice.LessThanOrEqual(p.RegularPrice)
}
