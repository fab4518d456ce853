package pricing

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidMemberOnlyMode = errors.New("invalid member-only mode")

type PriceType string

const (
	PriceTypeRegular     PriceType = "regular"
	PriceTypeMember      PriceType = "member"
	PriceTypePromotional PriceType = "promotional"
)

func (t PriceType) String() string {
	return string(t)
}

func (t PriceType) IsValid() bool {
	switch t {
	case PriceTypeRegular, PriceTypeMember, PriceTypePromotional:
		return true
	default:
		return false
	}
}

// MemberOnlyMode selects how MemberOnlyUntil is interpreted.
//
// MemberOnlyVisibility treats the window as a purchase gate enforced before a
// product reaches a cart, so resolution ignores it. MemberOnlyPricing lets
// non-members buy during the window but never at the promotional tier.
type MemberOnlyMode string

const (
	MemberOnlyVisibility MemberOnlyMode = "visibility"
	MemberOnlyPricing    MemberOnlyMode = "pricing"
)

func NewMemberOnlyMode(s string) (MemberOnlyMode, error) {
	m := MemberOnlyMode(s)
	switch m {
	case MemberOnlyVisibility, MemberOnlyPricing:
		return m, nil
	default:
		return "", ErrInvalidMemberOnlyMode
	}
}

type PriceResolution struct {
	Price   decimal.Decimal
	Type    PriceType
	Savings decimal.Decimal
}

type PriceResolver interface {
	ResolvePrice(p Product, isMember bool, now time.Time) PriceResolution
}

type TierResolver struct {
	mode MemberOnlyMode
}

func NewTierResolver(mode MemberOnlyMode) *TierResolver {
	if mode == "" {
		mode = MemberOnlyVisibility
	}
	return &TierResolver{mode: mode}
}

func (r *TierResolver) Mode() MemberOnlyMode {
	return r.mode
}

// ResolvePrice picks the first usable tier in promotional, member, regular order.
// Anomalous tier prices (negative, or above the regular price) are skipped.
func (r *TierResolver) ResolvePrice(p Product, isMember bool, now time.Time) PriceResolution {
	if r.promotionApplies(p, isMember, now) {
		price := *p.PromotionalPrice
		return PriceResolution{
			Price:   price,
			Type:    PriceTypePromotional,
			Savings: p.RegularPrice.Sub(price),
		}
	}

	if isMember && p.EarlyAccessOpenAt(now) && p.memberPriceUsable() {
		return PriceResolution{
			Price:   p.MemberPrice,
			Type:    PriceTypeMember,
			Savings: p.RegularPrice.Sub(p.MemberPrice),
		}
	}

	return PriceResolution{
		Price:   p.RegularPrice,
		Type:    PriceTypeRegular,
		Savings: decimal.Zero,
	}
}

func (r *TierResolver) promotionApplies(p Product, isMember bool, now time.Time) bool {
	if !p.PromotionActiveAt(now) || !p.promotionalPriceUsable() {
		return false
	}
	if r.mode == MemberOnlyPricing && !isMember && p.MemberOnlyAt(now) {
		return false
	}
	return true
}

// IsPurchasableBy is the catalog gate used before a line is written to a cart.
func IsPurchasableBy(p Product, isMember bool, mode MemberOnlyMode, now time.Time) bool {
	if mode == MemberOnlyPricing {
		return true
	}
	return isMember || !p.MemberOnlyAt(now)
}
