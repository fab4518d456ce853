package cart

import (
	"fmt"
	"time"

	"storefront-pricing/internal/domain/membership"
	"storefront-pricing/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type Aggregator struct {
	prices        pricing.PriceResolver
	qualification pricing.QualificationEvaluator
}

func NewAggregator(prices pricing.PriceResolver, qualification pricing.QualificationEvaluator) *Aggregator {
	return &Aggregator{
		prices:        prices,
		qualification: qualification,
	}
}

// FinalQualifies applies the price/qualification consistency rule: a line charged
// the promotional price never counts toward the qualifying total, whatever the
// evaluator said.
func FinalQualifies(qualifies bool, resolution pricing.PriceResolution) bool {
	return qualifies && resolution.Type != pricing.PriceTypePromotional
}

type accumulator struct {
	itemCount           int
	subtotal            decimal.Decimal
	memberSubtotal      decimal.Decimal
	applicableSubtotal  decimal.Decimal
	memberDiscount      decimal.Decimal
	promotionalDiscount decimal.Decimal
	qualifyingTotal     decimal.Decimal
}

// Summarize prices every line with the same now and folds the results.
// Lines without product facts are skipped; a quantity below 1 is a caller bug
// and aborts the computation.
func (a *Aggregator) Summarize(lines []Line, isMember bool, threshold membership.Threshold, now time.Time) (*Summary, error) {
	var acc accumulator
	summary := &Summary{
		Lines: make([]LineSummary, 0, len(lines)),
	}

	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("product %s: %w", line.ProductID, ErrInvalidQuantity)
		}
		if !line.IsAvailable() {
			summary.UnavailableProductIDs = append(summary.UnavailableProductIDs, line.ProductID)
			continue
		}

		product := *line.Product
		qty := decimal.NewFromInt(int64(line.Quantity))

		resolution := a.prices.ResolvePrice(product, isMember, now)
		qualifies := FinalQualifies(a.qualification.Qualifies(product, now), resolution)

		lineTotal := resolution.Price.Mul(qty)
		lineSavings := resolution.Savings.Mul(qty)

		acc.itemCount += line.Quantity
		acc.subtotal = acc.subtotal.Add(product.RegularPrice.Mul(qty))
		acc.memberSubtotal = acc.memberSubtotal.Add(product.MemberPrice.Mul(qty))
		acc.applicableSubtotal = acc.applicableSubtotal.Add(lineTotal)

		switch resolution.Type {
		case pricing.PriceTypePromotional:
			acc.promotionalDiscount = acc.promotionalDiscount.Add(lineSavings)
		case pricing.PriceTypeMember:
			acc.memberDiscount = acc.memberDiscount.Add(lineSavings)
		}

		if qualifies {
			acc.qualifyingTotal = acc.qualifyingTotal.Add(lineTotal)
		}

		summary.Lines = append(summary.Lines, LineSummary{
			ProductID:    line.ProductID,
			ProductName:  product.Name,
			Quantity:     line.Quantity,
			UnitPrice:    roundMoney(resolution.Price),
			RegularPrice: roundMoney(product.RegularPrice),
			MemberPrice:  roundMoney(product.MemberPrice),
			PriceType:    resolution.Type,
			UnitSavings:  roundMoney(resolution.Savings),
			LineTotal:    roundMoney(lineTotal),
			Qualifies:    qualifies,
		})
	}

	acc.fill(summary, threshold.Amount())
	return summary, nil
}

// fill rounds at the boundary and derives the threshold figures from the
// rounded qualifying total, so the published numbers agree with each other.
func (acc accumulator) fill(s *Summary, threshold decimal.Decimal) {
	s.ItemCount = acc.itemCount
	s.Subtotal = roundMoney(acc.subtotal)
	s.MemberSubtotal = roundMoney(acc.memberSubtotal)
	s.ApplicableSubtotal = roundMoney(acc.applicableSubtotal)
	s.MemberDiscount = roundMoney(acc.memberDiscount)
	s.PromotionalDiscount = roundMoney(acc.promotionalDiscount)
	s.QualifyingTotal = roundMoney(acc.qualifyingTotal)
	s.MembershipThreshold = roundMoney(threshold)
	s.Total = s.ApplicableSubtotal

	s.IsEligibleForMembership = s.QualifyingTotal.GreaterThanOrEqual(threshold)

	progress := s.QualifyingTotal.Mul(hundred).Div(threshold)
	if progress.GreaterThan(hundred) {
		progress = hundred
	}
	s.MembershipProgressPercent = progress.Round(moneyPlaces)

	needed := threshold.Sub(s.QualifyingTotal)
	if needed.IsNegative() {
		needed = decimal.Zero
	}
	s.AmountNeededForMembership = roundMoney(needed)
}
