//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront-pricing/internal/domain/cart"
	"storefront-pricing/internal/domain/membership"
	"storefront-pricing/internal/domain/pricing"
	"storefront-pricing/internal/pkg/clock"
	"storefront-pricing/internal/usecase/queries"
	"storefront-pricing/internal/usecase/shared"
	"storefront-pricing/tests/common/builder"
	"storefront-pricing/tests/common/testutil"
	sharedmock "storefront-pricing/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	products    *sharedmock.MockProductReadStore
	memberships *sharedmock.MockMembershipReadStore
	userCarts   *sharedmock.MockUserCartStore
	guestCarts  *sharedmock.MockGuestCartStore
	clock       *clock.FixedClock
	cartQ       queries.CartQueries
	membershipQ queries.MembershipQueries
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		products:    sharedmock.NewMockProductReadStore(ctrl),
		memberships: sharedmock.NewMockMembershipReadStore(ctrl),
		userCarts:   sharedmock.NewMockUserCartStore(ctrl),
		guestCarts:  sharedmock.NewMockGuestCartStore(ctrl),
		clock:       clock.NewFixedClock(now),
	}
	thresholds := sharedmock.NewMockThresholdSource(ctrl)
	threshold, err := membership.NewThreshold(testutil.Dec("100"))
	require.NoError(t, err)
	thresholds.EXPECT().MembershipThreshold(gomock.Any()).Return(threshold).AnyTimes()

	summarizer := shared.NewCartSummarizer(
		f.products, f.memberships, thresholds, f.userCarts, f.guestCarts,
		cart.NewAggregator(pricing.NewTierResolver(""), pricing.NewDefaultQualificationEvaluator()),
	)
	f.cartQ = queries.NewCartQueries(summarizer, f.clock)
	f.membershipQ = queries.NewMembershipQueries(summarizer)
	return f
}

func TestCartQueries_GetCart(t *testing.T) {
	t.Run("時刻によってプロモ価格が切り替わる", func(t *testing.T) {
		f := newFixture(t)
		end := now.Add(time.Hour)
		p := builder.NewProductBuilder().WithPromotion("60", nil, &end)
		guestID := uuid.New()

		f.guestCarts.EXPECT().List(gomock.Any(), guestID).
			Return([]shared.CartLineRecord{{ProductID: p.ID, Quantity: 1}}, nil).Times(2)
		f.products.EXPECT().FindByIDs(gomock.Any(), []uuid.UUID{p.ID}).
			Return(map[uuid.UUID]shared.ProductSnapshot{p.ID: p.BuildSnapshot()}, nil).Times(2)

		during, err := f.cartQ.GetCart(context.Background(), shared.GuestBuyer(guestID))
		require.NoError(t, err)
		assert.Equal(t, "promotional", during.Lines[0].PriceType)
		assert.True(t, during.QualifyingTotal.IsZero())

		f.clock.Advance(2 * time.Hour)

		after, err := f.cartQ.GetCart(context.Background(), shared.GuestBuyer(guestID))
		require.NoError(t, err)
		assert.Equal(t, "regular", after.Lines[0].PriceType)
		assert.True(t, after.QualifyingTotal.Equal(testutil.Dec("100")))
		assert.True(t, after.IsEligibleForMembership)
		assert.Equal(t, now.Add(2*time.Hour), after.PricedAt)
	})
}

func TestCartQueries_PreviewEligibility(t *testing.T) {
	ctx := context.Background()

	t.Run("重複商品をまとめて計算", func(t *testing.T) {
		f := newFixture(t)
		a := builder.NewProductBuilder().WithPrices("30", "25")
		b := builder.NewProductBuilder().WithPrices("20", "15").WithoutQualification()
		userID := uuid.New()

		f.memberships.EXPECT().FindByUserID(gomock.Any(), userID).
			Return(&shared.MembershipRecord{UserID: userID}, nil)
		f.products.EXPECT().FindByIDs(gomock.Any(), []uuid.UUID{a.ID, b.ID}).
			Return(map[uuid.UUID]shared.ProductSnapshot{
				a.ID: a.BuildSnapshot(),
				b.ID: b.BuildSnapshot(),
			}, nil)

		view, err := f.cartQ.PreviewEligibility(ctx, shared.UserBuyer(userID, false), []shared.CartLineRecord{
			{ProductID: a.ID, Quantity: 1},
			{ProductID: b.ID, Quantity: 1},
			{ProductID: a.ID, Quantity: 2},
		})
		require.NoError(t, err)

		require.Len(t, view.Lines, 2)
		assert.Equal(t, a.ID, view.Lines[0].ProductID)
		assert.Equal(t, 3, view.Lines[0].Quantity)
		assert.True(t, view.QualifyingTotal.Equal(testutil.Dec("90")))
		assert.True(t, view.AmountNeededForMembership.Equal(testutil.Dec("10")))
		assert.True(t, view.MembershipProgressPercent.Equal(testutil.Dec("90")))
		assert.False(t, view.IsEligibleForMembership)
	})

	t.Run("入力エラー", func(t *testing.T) {
		tooMany := make([]shared.CartLineRecord, queries.MaxPreviewItems+1)
		for i := range tooMany {
			tooMany[i] = shared.CartLineRecord{ProductID: uuid.New(), Quantity: 1}
		}

		tests := []struct {
			name  string
			items []shared.CartLineRecord
			errIs error
		}{
			{name: "空", items: nil, errIs: queries.ErrEmptyPreview},
			{name: "上限超過", items: tooMany, errIs: queries.ErrTooManyPreviewItems},
			{name: "数量0", items: []shared.CartLineRecord{{ProductID: uuid.New(), Quantity: 0}}, errIs: queries.ErrInvalidPreviewItem},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture(t)
				_, err := f.cartQ.PreviewEligibility(ctx, shared.GuestBuyer(uuid.New()), tt.items)
				assert.ErrorIs(t, err, tt.errIs)
			})
		}
	})
}

func TestMembershipQueries_GetStatus(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	f.memberships.EXPECT().FindByUserID(gomock.Any(), userID).
		Return(&shared.MembershipRecord{UserID: userID, IsMember: true}, nil)

	view, err := f.membershipQ.GetStatus(context.Background(), shared.UserBuyer(userID, false))
	require.NoError(t, err)

	assert.Equal(t, "active", view.Status)
	assert.True(t, view.IsMember)
	assert.True(t, view.SessionStale)
	assert.True(t, view.Threshold.Equal(testutil.Dec("100")))
}
