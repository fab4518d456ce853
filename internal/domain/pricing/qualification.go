package pricing

import "time"

type QualificationEvaluator interface {
	Qualifies(p Product, now time.Time) bool
}

// DefaultQualificationEvaluator counts flagged products bought outside a promotion.
// It does not look at the buyer: membership progress only matters for non-members,
// and member-only gating happens before the product reaches a cart.
type DefaultQualificationEvaluator struct{}

func NewDefaultQualificationEvaluator() *DefaultQualificationEvaluator {
	return &DefaultQualificationEvaluator{}
}

func (e *DefaultQualificationEvaluator) Qualifies(p Product, now time.Time) bool {
	if !p.IsQualifyingForMembership {
		return false
	}
	return !p.PromotionActiveAt(now)
}
