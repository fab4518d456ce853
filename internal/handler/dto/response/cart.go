package response

import (
	"time"

	"storefront-pricing/internal/usecase/readmodel"

	"github.com/shopspring/decimal"
)

type CartLineResponse struct {
	ProductID              string `json:"product_id"`
	ProductName            string `json:"product_name"`
	Quantity               int    `json:"quantity"`
	UnitPrice              string `json:"unit_price"`
	RegularPrice           string `json:"regular_price"`
	MemberPrice            string `json:"member_price"`
	PriceType              string `json:"price_type"`
	UnitSavings            string `json:"unit_savings"`
	LineTotal              string `json:"line_total"`
	QualifiesForMembership bool   `json:"qualifies_for_membership"`
}

type CartResponse struct {
	OwnerID                   string             `json:"owner_id"`
	IsGuest                   bool               `json:"is_guest"`
	Membership                MembershipResponse `json:"membership"`
	Lines                     []CartLineResponse `json:"lines"`
	UnavailableProductIDs     []string           `json:"unavailable_product_ids"`
	ItemCount                 int                `json:"item_count"`
	Subtotal                  string             `json:"subtotal"`
	MemberSubtotal            string             `json:"member_subtotal"`
	ApplicableSubtotal        string             `json:"applicable_subtotal"`
	MemberDiscount            string             `json:"member_discount"`
	PromotionalDiscount       string             `json:"promotional_discount"`
	QualifyingTotal           string             `json:"qualifying_total"`
	MembershipThreshold       string             `json:"membership_threshold"`
	IsEligibleForMembership   bool               `json:"is_eligible_for_membership"`
	MembershipProgressPercent string             `json:"membership_progress_percent"`
	AmountNeededForMembership string             `json:"amount_needed_for_membership"`
	Total                     string             `json:"total"`
	PricedAt                  string             `json:"priced_at"`
}

func FromCartView(v *readmodel.CartView) *CartResponse {
	lines := make([]CartLineResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = CartLineResponse{
			ProductID:              l.ProductID.String(),
			ProductName:            l.ProductName,
			Quantity:               l.Quantity,
			UnitPrice:              money(l.UnitPrice),
			RegularPrice:           money(l.RegularPrice),
			MemberPrice:            money(l.MemberPrice),
			PriceType:              l.PriceType,
			UnitSavings:            money(l.UnitSavings),
			LineTotal:              money(l.LineTotal),
			QualifiesForMembership: l.QualifiesForMembership,
		}
	}

	unavailable := make([]string, len(v.UnavailableProductIDs))
	for i, id := range v.UnavailableProductIDs {
		unavailable[i] = id.String()
	}

	return &CartResponse{
		OwnerID:                   v.OwnerID.String(),
		IsGuest:                   v.IsGuest,
		Membership:                *FromMembershipView(&v.Membership),
		Lines:                     lines,
		UnavailableProductIDs:     unavailable,
		ItemCount:                 v.ItemCount,
		Subtotal:                  money(v.Subtotal),
		MemberSubtotal:            money(v.MemberSubtotal),
		ApplicableSubtotal:        money(v.ApplicableSubtotal),
		MemberDiscount:            money(v.MemberDiscount),
		PromotionalDiscount:       money(v.PromotionalDiscount),
		QualifyingTotal:           money(v.QualifyingTotal),
		MembershipThreshold:       money(v.MembershipThreshold),
		IsEligibleForMembership:   v.IsEligibleForMembership,
		MembershipProgressPercent: money(v.MembershipProgressPercent),
		AmountNeededForMembership: money(v.AmountNeededForMembership),
		Total:                     money(v.Total),
		PricedAt:                  v.PricedAt.UTC().Format(time.RFC3339),
	}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
