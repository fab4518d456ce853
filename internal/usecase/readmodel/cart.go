package readmodel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartView is the read-optimized cart summary shared by the guest and
// authenticated paths. Money fields are already rounded to two places.
type CartView struct {
	OwnerID                   uuid.UUID       `json:"owner_id"`
	IsGuest                   bool            `json:"is_guest"`
	Membership                MembershipView  `json:"membership"`
	Lines                     []CartLineView  `json:"lines"`
	UnavailableProductIDs     []uuid.UUID     `json:"unavailable_product_ids"`
	ItemCount                 int             `json:"item_count"`
	Subtotal                  decimal.Decimal `json:"subtotal"`
	MemberSubtotal            decimal.Decimal `json:"member_subtotal"`
	ApplicableSubtotal        decimal.Decimal `json:"applicable_subtotal"`
	MemberDiscount            decimal.Decimal `json:"member_discount"`
	PromotionalDiscount       decimal.Decimal `json:"promotional_discount"`
	QualifyingTotal           decimal.Decimal `json:"qualifying_total"`
	MembershipThreshold       decimal.Decimal `json:"membership_threshold"`
	IsEligibleForMembership   bool            `json:"is_eligible_for_membership"`
	MembershipProgressPercent decimal.Decimal `json:"membership_progress_percent"`
	AmountNeededForMembership decimal.Decimal `json:"amount_needed_for_membership"`
	Total                     decimal.Decimal `json:"total"`
	PricedAt                  time.Time       `json:"priced_at"`
}

type CartLineView struct {
	ProductID              uuid.UUID       `json:"product_id"`
	ProductName            string          `json:"product_name"`
	Quantity               int             `json:"quantity"`
	UnitPrice              decimal.Decimal `json:"unit_price"`
	RegularPrice           decimal.Decimal `json:"regular_price"`
	MemberPrice            decimal.Decimal `json:"member_price"`
	PriceType              string          `json:"price_type"`
	UnitSavings            decimal.Decimal `json:"unit_savings"`
	LineTotal              decimal.Decimal `json:"line_total"`
	QualifiesForMembership bool            `json:"qualifies_for_membership"`
}

// MembershipView describes the buyer's membership as used for pricing.
// SessionStale is true when the caller's token disagrees with the store.
type MembershipView struct {
	Status          string          `json:"status"`
	IsMember        bool            `json:"is_member"`
	SessionIsMember bool            `json:"session_is_member"`
	SessionStale    bool            `json:"session_stale"`
	Threshold       decimal.Decimal `json:"threshold"`
}
