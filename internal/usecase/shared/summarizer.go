package shared

import (
	"context"
	"time"

	"storefront-pricing/internal/domain/cart"
	"storefront-pricing/internal/domain/membership"
	"storefront-pricing/internal/domain/pricing"
	"storefront-pricing/internal/infra"
	"storefront-pricing/internal/pkg/errs"
	"storefront-pricing/internal/usecase/readmodel"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// CartSummarizer is the one path from stored cart lines to a CartView. Guest
// and authenticated carts differ only in which CartLineStore they read and in
// how membership facts are gathered.
type CartSummarizer struct {
	products    ProductReadStore
	memberships MembershipReadStore
	thresholds  ThresholdSource
	userCarts   UserCartStore
	guestCarts  GuestCartStore
	aggregator  *cart.Aggregator
}

func NewCartSummarizer(
	products ProductReadStore,
	memberships MembershipReadStore,
	thresholds ThresholdSource,
	userCarts UserCartStore,
	guestCarts GuestCartStore,
	aggregator *cart.Aggregator,
) *CartSummarizer {
	return &CartSummarizer{
		products:    products,
		memberships: memberships,
		thresholds:  thresholds,
		userCarts:   userCarts,
		guestCarts:  guestCarts,
		aggregator:  aggregator,
	}
}

func (s *CartSummarizer) CartStore(b Buyer) CartLineStore {
	if b.IsGuest() {
		return s.guestCarts
	}
	return s.userCarts
}

// MembershipFacts reads the persisted flags on every call; the session flag on
// the buyer is carried along but never trusted.
func (s *CartSummarizer) MembershipFacts(ctx context.Context, b Buyer) (membership.Facts, error) {
	if b.IsGuest() {
		return membership.GuestFacts(b.SessionIsMember), nil
	}

	rec, err := s.memberships.FindByUserID(ctx, b.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return membership.Facts{}, errs.Mark(err, errs.ErrUserNotFound)
		}
		return membership.Facts{}, errs.Wrap(err, "load membership facts")
	}

	return membership.Facts{
		SessionIsMember:      b.SessionIsMember,
		PersistedIsMember:    rec.IsMember,
		HasPendingMembership: rec.HasPendingMembership,
	}, nil
}

func (s *CartSummarizer) MembershipView(ctx context.Context, b Buyer) (*readmodel.MembershipView, error) {
	if !b.Valid() {
		return nil, errs.ErrBuyerUnresolved
	}
	facts, err := s.MembershipFacts(ctx, b)
	if err != nil {
		return nil, err
	}
	view := toMembershipView(facts, s.thresholds.MembershipThreshold(ctx))
	return &view, nil
}

// Summarize prices the buyer's stored cart at now.
func (s *CartSummarizer) Summarize(ctx context.Context, b Buyer, now time.Time) (*readmodel.CartView, error) {
	if !b.Valid() {
		return nil, errs.ErrBuyerUnresolved
	}

	var (
		facts   membership.Facts
		records []CartLineRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		facts, err = s.MembershipFacts(gctx, b)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.CartStore(b).List(gctx, b.Owner())
		if err != nil {
			return errs.Mark(err, errs.ErrCartStoreFailed)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.summarize(ctx, b, facts, records, now)
}

// SummarizeLines prices lines that are not stored anywhere, for previews.
func (s *CartSummarizer) SummarizeLines(ctx context.Context, b Buyer, records []CartLineRecord, now time.Time) (*readmodel.CartView, error) {
	if !b.Valid() {
		return nil, errs.ErrBuyerUnresolved
	}

	facts, err := s.MembershipFacts(ctx, b)
	if err != nil {
		return nil, err
	}

	return s.summarize(ctx, b, facts, records, now)
}

func (s *CartSummarizer) summarize(ctx context.Context, b Buyer, facts membership.Facts, records []CartLineRecord, now time.Time) (*readmodel.CartView, error) {
	products, err := s.loadProducts(ctx, records)
	if err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(records))
	for _, r := range records {
		var product *pricing.Product
		if snap, ok := products[r.ProductID]; ok && snap.IsSellable() {
			p := snap.PricingFacts()
			product = &p
		}
		lines = append(lines, cart.Line{ProductID: r.ProductID, Product: product, Quantity: r.Quantity})
	}

	threshold := s.thresholds.MembershipThreshold(ctx)
	summary, err := s.aggregator.Summarize(lines, facts.IsMember(), threshold, now)
	if err != nil {
		return nil, errs.Wrap(err, "summarize cart")
	}

	view := toCartView(b, facts, threshold, summary, now)
	return &view, nil
}

func (s *CartSummarizer) loadProducts(ctx context.Context, records []CartLineRecord) (map[uuid.UUID]ProductSnapshot, error) {
	if len(records) == 0 {
		return map[uuid.UUID]ProductSnapshot{}, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(records))
	ids := make([]uuid.UUID, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.ProductID]; ok {
			continue
		}
		seen[r.ProductID] = struct{}{}
		ids = append(ids, r.ProductID)
	}

	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Wrap(err, "load product facts")
	}
	return products, nil
}

func toMembershipView(facts membership.Facts, threshold membership.Threshold) readmodel.MembershipView {
	return readmodel.MembershipView{
		Status:          facts.Status().String(),
		IsMember:        facts.IsMember(),
		SessionIsMember: facts.SessionIsMember,
		SessionStale:    facts.SessionStale(),
		Threshold:       threshold.Amount().Round(2),
	}
}

func toCartView(b Buyer, facts membership.Facts, threshold membership.Threshold, s *cart.Summary, now time.Time) readmodel.CartView {
	lines := make([]readmodel.CartLineView, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, readmodel.CartLineView{
			ProductID:              l.ProductID,
			ProductName:            l.ProductName,
			Quantity:               l.Quantity,
			UnitPrice:              l.UnitPrice,
			RegularPrice:           l.RegularPrice,
			MemberPrice:            l.MemberPrice,
			PriceType:              l.PriceType.String(),
			UnitSavings:            l.UnitSavings,
			LineTotal:              l.LineTotal,
			QualifiesForMembership: l.Qualifies,
		})
	}

	unavailable := s.UnavailableProductIDs
	if unavailable == nil {
		unavailable = []uuid.UUID{}
	}

	return readmodel.CartView{
		OwnerID:                   b.Owner(),
		IsGuest:                   b.IsGuest(),
		Membership:                toMembershipView(facts, threshold),
		Lines:                     lines,
		UnavailableProductIDs:     unavailable,
		ItemCount:                 s.ItemCount,
		Subtotal:                  s.Subtotal,
		MemberSubtotal:            s.MemberSubtotal,
		ApplicableSubtotal:        s.ApplicableSubtotal,
		MemberDiscount:            s.MemberDiscount,
		PromotionalDiscount:       s.PromotionalDiscount,
		QualifyingTotal:           s.QualifyingTotal,
		MembershipThreshold:       s.MembershipThreshold,
		IsEligibleForMembership:   s.IsEligibleForMembership,
		MembershipProgressPercent: s.MembershipProgressPercent,
		AmountNeededForMembership: s.AmountNeededForMembership,
		Total:                     s.Total,
		PricedAt:                  now,
	}
}
