package queries

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/queries/cart.go -package=queriesmock

import (
	"context"

	"storefront-pricing/internal/pkg/clock"
	"storefront-pricing/internal/pkg/errs"
	"storefront-pricing/internal/usecase/readmodel"
	"storefront-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

const MaxPreviewItems = 100

var (
	ErrEmptyPreview        = errs.New("preview requires at least one item")
	ErrTooManyPreviewItems = errs.New("too many preview items")
	ErrInvalidPreviewItem  = errs.New("preview item quantity must be at least 1")
)

type CartQueries interface {
	GetCart(ctx context.Context, buyer shared.Buyer) (*readmodel.CartView, error)
	// PreviewEligibility prices a hypothetical cart without touching the stored one.
	PreviewEligibility(ctx context.Context, buyer shared.Buyer, items []shared.CartLineRecord) (*readmodel.CartView, error)
}

type cartQueriesImpl struct {
	summarizer *shared.CartSummarizer
	clock      clock.Clock
}

func NewCartQueries(summarizer *shared.CartSummarizer, clk clock.Clock) CartQueries {
	return &cartQueriesImpl{
		summarizer: summarizer,
		clock:      clk,
	}
}

func (q *cartQueriesImpl) GetCart(ctx context.Context, buyer shared.Buyer) (*readmodel.CartView, error) {
	return q.summarizer.Summarize(ctx, buyer, q.clock.Now())
}

func (q *cartQueriesImpl) PreviewEligibility(ctx context.Context, buyer shared.Buyer, items []shared.CartLineRecord) (*readmodel.CartView, error) {
	lines, err := normalizePreviewItems(items)
	if err != nil {
		return nil, err
	}
	return q.summarizer.SummarizeLines(ctx, buyer, lines, q.clock.Now())
}

// normalizePreviewItems folds repeated products into one line, keeping the
// order in which each product first appeared.
func normalizePreviewItems(items []shared.CartLineRecord) ([]shared.CartLineRecord, error) {
	if len(items) == 0 {
		return nil, ErrEmptyPreview
	}
	if len(items) > MaxPreviewItems {
		return nil, ErrTooManyPreviewItems
	}

	index := make(map[uuid.UUID]int, len(items))
	lines := make([]shared.CartLineRecord, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, ErrInvalidPreviewItem
		}
		if i, ok := index[item.ProductID]; ok {
			lines[i].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(lines)
		lines = append(lines, item)
	}
	return lines, nil
}
