package queries

//go:generate mockgen -source=membership.go -destination=../../../tests/mock/queries/membership.go -package=queriesmock

import (
	"context"

	"storefront-pricing/internal/usecase/readmodel"
	"storefront-pricing/internal/usecase/shared"
)

type MembershipQueries interface {
	GetStatus(ctx context.Context, buyer shared.Buyer) (*readmodel.MembershipView, error)
}

type membershipQueriesImpl struct {
	summarizer *shared.CartSummarizer
}

func NewMembershipQueries(summarizer *shared.CartSummarizer) MembershipQueries {
	return &membershipQueriesImpl{
		summarizer: summarizer,
	}
}

func (q *membershipQueriesImpl) GetStatus(ctx context.Context, buyer shared.Buyer) (*readmodel.MembershipView, error) {
	return q.summarizer.MembershipView(ctx, buyer)
}
