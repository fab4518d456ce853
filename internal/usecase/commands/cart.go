package commands

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/commands/cart.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"storefront-pricing/internal/domain/pricing"
	"storefront-pricing/internal/pkg/clock"
	"storefront-pricing/internal/pkg/errs"
	"storefront-pricing/internal/usecase/readmodel"
	"storefront-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

// CartCommands mutate a buyer's cart and return the recomputed view.
type CartCommands interface {
	AddItem(ctx context.Context, buyer shared.Buyer, productID uuid.UUID, quantity int) (*readmodel.CartView, error)
	UpdateQuantity(ctx context.Context, buyer shared.Buyer, productID uuid.UUID, quantity int) (*readmodel.CartView, error)
	RemoveItem(ctx context.Context, buyer shared.Buyer, productID uuid.UUID) (*readmodel.CartView, error)
	Clear(ctx context.Context, buyer shared.Buyer) (*readmodel.CartView, error)
	MergeGuestCart(ctx context.Context, buyer shared.Buyer, guestID uuid.UUID) (*readmodel.CartView, error)
}

type cartCommandsImpl struct {
	summarizer *shared.CartSummarizer
	products   shared.ProductReadStore
	clock      clock.Clock
	mode       pricing.MemberOnlyMode
	logger     *slog.Logger
}

func NewCartCommands(
	summarizer *shared.CartSummarizer,
	products shared.ProductReadStore,
	clk clock.Clock,
	mode pricing.MemberOnlyMode,
	logger *slog.Logger,
) CartCommands {
	return &cartCommandsImpl{
		summarizer: summarizer,
		products:   products,
		clock:      clk,
		mode:       mode,
		logger:     logger,
	}
}

func (c *cartCommandsImpl) AddItem(ctx context.Context, buyer shared.Buyer, productID uuid.UUID, quantity int) (*readmodel.CartView, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if !buyer.Valid() {
		return nil, errs.ErrBuyerUnresolved
	}

	now := c.clock.Now()
	product, err := c.purchasableProduct(ctx, buyer, productID, now)
	if err != nil {
		return nil, err
	}

	_, err = c.summarizer.CartStore(buyer).Upsert(ctx, buyer.Owner(), productID, func(current int) (int, error) {
		return product.ClampToStock(current + quantity), nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "add cart item")
	}

	return c.summarizer.Summarize(ctx, buyer, now)
}

// UpdateQuantity sets the quantity of a line already in the cart. Zero removes it.
func (c *cartCommandsImpl) UpdateQuantity(ctx context.Context, buyer shared.Buyer, productID uuid.UUID, quantity int) (*readmodel.CartView, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if quantity == 0 {
		return c.RemoveItem(ctx, buyer, productID)
	}
	if !buyer.Valid() {
		return nil, errs.ErrBuyerUnresolved
	}

	now := c.clock.Now()
	product, err := c.purchasableProduct(ctx, buyer, productID, now)
	if err != nil {
		return nil, err
	}

	_, err = c.summarizer.CartStore(buyer).Upsert(ctx, buyer.Owner(), productID, func(current int) (int, error) {
		if current == 0 {
			return 0, ErrCartItemNotFound
		}
		return product.ClampToStock(quantity), nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "update cart item")
	}

	return c.summarizer.Summarize(ctx, buyer, now)
}

func (c *cartCommandsImpl) RemoveItem(ctx context.Context, buyer shared.Buyer, productID uuid.UUID) (*readmodel.CartView, error) {
	if !buyer.Valid() {
		return nil, errs.ErrBuyerUnresolved
	}
	now := c.clock.Now()

	if err := c.summarizer.CartStore(buyer).Remove(ctx, buyer.Owner(), productID); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "remove cart item"), errs.ErrCartStoreFailed)
	}

	return c.summarizer.Summarize(ctx, buyer, now)
}

func (c *cartCommandsImpl) Clear(ctx context.Context, buyer shared.Buyer) (*readmodel.CartView, error) {
	if !buyer.Valid() {
		return nil, errs.ErrBuyerUnresolved
	}
	now := c.clock.Now()

	if err := c.summarizer.CartStore(buyer).Clear(ctx, buyer.Owner()); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "clear cart"), errs.ErrCartStoreFailed)
	}

	return c.summarizer.Summarize(ctx, buyer, now)
}

// MergeGuestCart folds a guest cart into the user's cart after login. Lines the
// user could not add themselves are dropped; the guest cart is emptied either way.
func (c *cartCommandsImpl) MergeGuestCart(ctx context.Context, buyer shared.Buyer, guestID uuid.UUID) (*readmodel.CartView, error) {
	if buyer.IsGuest() {
		return nil, ErrMergeRequiresLogin
	}

	now := c.clock.Now()
	if guestID == uuid.Nil {
		return c.summarizer.Summarize(ctx, buyer, now)
	}

	guest := shared.GuestBuyer(guestID)
	guestStore := c.summarizer.CartStore(guest)
	records, err := guestStore.List(ctx, guestID)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "list guest cart"), errs.ErrCartStoreFailed)
	}
	if len(records) == 0 {
		return c.summarizer.Summarize(ctx, buyer, now)
	}

	facts, err := c.summarizer.MembershipFacts(ctx, buyer)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ProductID)
	}
	products, err := c.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Wrap(err, "load products for merge")
	}

	userStore := c.summarizer.CartStore(buyer)
	merged, dropped := 0, 0
	for _, r := range records {
		product, ok := products[r.ProductID]
		if !ok || !product.IsSellable() || !product.InStock() ||
			!pricing.IsPurchasableBy(product.PricingFacts(), facts.IsMember(), c.mode, now) {
			dropped++
			continue
		}

		quantity := r.Quantity
		_, err := userStore.Upsert(ctx, buyer.UserID, r.ProductID, func(current int) (int, error) {
			return product.ClampToStock(current + quantity), nil
		})
		if err != nil {
			return nil, errs.Wrap(err, "merge cart item")
		}
		merged++
	}

	if err := guestStore.Clear(ctx, guestID); err != nil {
		// The user cart already holds the lines; a leftover guest cart expires on its own.
		c.logger.Warn("failed to clear merged guest cart",
			slog.String("guest_id", guestID.String()),
			slog.String("error", err.Error()))
	}

	c.logger.Info("guest cart merged",
		slog.String("user_id", buyer.UserID.String()),
		slog.Int("merged", merged),
		slog.Int("dropped", dropped))

	return c.summarizer.Summarize(ctx, buyer, now)
}

func (c *cartCommandsImpl) purchasableProduct(ctx context.Context, buyer shared.Buyer, productID uuid.UUID, now time.Time) (shared.ProductSnapshot, error) {
	facts, err := c.summarizer.MembershipFacts(ctx, buyer)
	if err != nil {
		return shared.ProductSnapshot{}, err
	}

	products, err := c.products.FindByIDs(ctx, []uuid.UUID{productID})
	if err != nil {
		return shared.ProductSnapshot{}, errs.Wrap(err, "load product")
	}
	product, ok := products[productID]
	if !ok {
		return shared.ProductSnapshot{}, errs.ErrProductNotFound
	}
	if !product.IsSellable() {
		return shared.ProductSnapshot{}, errs.ErrProductUnavailable
	}
	if !pricing.IsPurchasableBy(product.PricingFacts(), facts.IsMember(), c.mode, now) {
		return shared.ProductSnapshot{}, ErrMemberOnlyProduct
	}
	if !product.InStock() {
		return shared.ProductSnapshot{}, ErrOutOfStock
	}
	return product, nil
}
