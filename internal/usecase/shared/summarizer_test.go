//go:build unit

package shared_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront-pricing/internal/domain/cart"
	"storefront-pricing/internal/domain/membership"
	"storefront-pricing/internal/domain/pricing"
	"storefront-pricing/internal/infra"
	"storefront-pricing/internal/pkg/errs"
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

type summarizerFixture struct {
	products    *sharedmock.MockProductReadStore
	memberships *sharedmock.MockMembershipReadStore
	thresholds  *sharedmock.MockThresholdSource
	userCarts   *sharedmock.MockUserCartStore
	guestCarts  *sharedmock.MockGuestCartStore
	summarizer  *shared.CartSummarizer
}

func newSummarizerFixture(t *testing.T) *summarizerFixture {
	ctrl := gomock.NewController(t)
	f := &summarizerFixture{
		products:    sharedmock.NewMockProductReadStore(ctrl),
		memberships: sharedmock.NewMockMembershipReadStore(ctrl),
		thresholds:  sharedmock.NewMockThresholdSource(ctrl),
		userCarts:   sharedmock.NewMockUserCartStore(ctrl),
		guestCarts:  sharedmock.NewMockGuestCartStore(ctrl),
	}
	f.summarizer = shared.NewCartSummarizer(
		f.products, f.memberships, f.thresholds, f.userCarts, f.guestCarts,
		cart.NewAggregator(pricing.NewTierResolver(""), pricing.NewDefaultQualificationEvaluator()),
	)
	f.thresholds.EXPECT().MembershipThreshold(gomock.Any()).Return(membership.DefaultThreshold()).AnyTimes()
	return f
}

func TestCartSummarizer_Summarize(t *testing.T) {
	ctx := context.Background()

	t.Run("ゲストと会員登録済みでない利用者は同じ金額", func(t *testing.T) {
		f := newSummarizerFixture(t)
		p := builder.NewProductBuilder().WithPrices("30", "25")
		guestID, userID := uuid.New(), uuid.New()
		records := []shared.CartLineRecord{{ProductID: p.ID, Quantity: 2}}

		f.guestCarts.EXPECT().List(gomock.Any(), guestID).Return(records, nil)
		f.userCarts.EXPECT().List(gomock.Any(), userID).Return(records, nil)
		f.memberships.EXPECT().FindByUserID(gomock.Any(), userID).
			Return(&shared.MembershipRecord{UserID: userID}, nil)
		f.products.EXPECT().FindByIDs(gomock.Any(), []uuid.UUID{p.ID}).
			Return(map[uuid.UUID]shared.ProductSnapshot{p.ID: p.BuildSnapshot()}, nil).Times(2)

		guestView, err := f.summarizer.Summarize(ctx, shared.GuestBuyer(guestID), now)
		require.NoError(t, err)
		userView, err := f.summarizer.Summarize(ctx, shared.UserBuyer(userID, false), now)
		require.NoError(t, err)

		assert.True(t, guestView.IsGuest)
		assert.False(t, userView.IsGuest)
		assert.Equal(t, guestID, guestView.OwnerID)
		assert.True(t, guestView.Total.Equal(testutil.Dec("60")))
		assert.True(t, guestView.Total.Equal(userView.Total))
		assert.True(t, guestView.QualifyingTotal.Equal(userView.QualifyingTotal))
		assert.True(t, guestView.MembershipProgressPercent.Equal(testutil.Dec("75")))
		assert.Equal(t, now, guestView.PricedAt)
	})

	t.Run("永続化された会員フラグで価格を決める", func(t *testing.T) {
		f := newSummarizerFixture(t)
		p := builder.NewProductBuilder()
		userID := uuid.New()

		f.memberships.EXPECT().FindByUserID(gomock.Any(), userID).
			Return(&shared.MembershipRecord{UserID: userID, IsMember: true}, nil)
		f.userCarts.EXPECT().List(gomock.Any(), userID).
			Return([]shared.CartLineRecord{{ProductID: p.ID, Quantity: 1}}, nil)
		f.products.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).
			Return(map[uuid.UUID]shared.ProductSnapshot{p.ID: p.BuildSnapshot()}, nil)

		view, err := f.summarizer.Summarize(ctx, shared.UserBuyer(userID, false), now)
		require.NoError(t, err)

		require.Len(t, view.Lines, 1)
		assert.Equal(t, "member", view.Lines[0].PriceType)
		assert.True(t, view.Membership.IsMember)
		assert.True(t, view.Membership.SessionStale)
		assert.Equal(t, "active", view.Membership.Status)
	})

	t.Run("保留中は非会員価格", func(t *testing.T) {
		f := newSummarizerFixture(t)
		p := builder.NewProductBuilder()
		userID := uuid.New()

		f.memberships.EXPECT().FindByUserID(gomock.Any(), userID).
			Return(&shared.MembershipRecord{UserID: userID, IsMember: true, HasPendingMembership: true}, nil)
		f.userCarts.EXPECT().List(gomock.Any(), userID).
			Return([]shared.CartLineRecord{{ProductID: p.ID, Quantity: 1}}, nil)
		f.products.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).
			Return(map[uuid.UUID]shared.ProductSnapshot{p.ID: p.BuildSnapshot()}, nil)

		view, err := f.summarizer.Summarize(ctx, shared.UserBuyer(userID, true), now)
		require.NoError(t, err)

		assert.Equal(t, "regular", view.Lines[0].PriceType)
		assert.Equal(t, "pending", view.Membership.Status)
		assert.False(t, view.Membership.IsMember)
	})

	t.Run("販売停止と存在しない商品は利用不可として返す", func(t *testing.T) {
		f := newSummarizerFixture(t)
		active := builder.NewProductBuilder()
		inactive := builder.NewProductBuilder().AsInactive()
		missing := uuid.New()
		guestID := uuid.New()

		f.guestCarts.EXPECT().List(gomock.Any(), guestID).Return([]shared.CartLineRecord{
			{ProductID: active.ID, Quantity: 1},
			{ProductID: inactive.ID, Quantity: 1},
			{ProductID: missing, Quantity: 1},
		}, nil)
		f.products.EXPECT().FindByIDs(gomock.Any(), []uuid.UUID{active.ID, inactive.ID, missing}).
			Return(map[uuid.UUID]shared.ProductSnapshot{
				active.ID:   active.BuildSnapshot(),
				inactive.ID: inactive.BuildSnapshot(),
			}, nil)

		view, err := f.summarizer.Summarize(ctx, shared.GuestBuyer(guestID), now)
		require.NoError(t, err)

		assert.Len(t, view.Lines, 1)
		assert.ElementsMatch(t, []uuid.UUID{inactive.ID, missing}, view.UnavailableProductIDs)
		assert.Equal(t, 1, view.ItemCount)
	})

	t.Run("空のカートは商品を読まない", func(t *testing.T) {
		f := newSummarizerFixture(t)
		guestID := uuid.New()
		f.guestCarts.EXPECT().List(gomock.Any(), guestID).Return(nil, nil)

		view, err := f.summarizer.Summarize(ctx, shared.GuestBuyer(guestID), now)
		require.NoError(t, err)

		assert.Empty(t, view.Lines)
		assert.NotNil(t, view.UnavailableProductIDs)
		assert.True(t, view.AmountNeededForMembership.Equal(testutil.Dec("80")))
	})

	t.Run("エラー", func(t *testing.T) {
		t.Run("購入者が不明", func(t *testing.T) {
			f := newSummarizerFixture(t)
			_, err := f.summarizer.Summarize(ctx, shared.Buyer{}, now)
			assert.ErrorIs(t, err, errs.ErrBuyerUnresolved)
		})

		t.Run("ユーザーが存在しない", func(t *testing.T) {
			f := newSummarizerFixture(t)
			userID := uuid.New()
			notFound := infra.WrapRepoErr(slog.New(slog.NewTextHandler(io.Discard, nil)), infra.KindNotFound, "user not found", nil)
			f.memberships.EXPECT().FindByUserID(gomock.Any(), userID).Return(nil, notFound)
			f.userCarts.EXPECT().List(gomock.Any(), userID).Return(nil, nil).MaxTimes(1)

			_, err := f.summarizer.Summarize(ctx, shared.UserBuyer(userID, false), now)
			assert.True(t, errs.Is(err, errs.ErrUserNotFound))
		})

		t.Run("カートストア障害", func(t *testing.T) {
			f := newSummarizerFixture(t)
			guestID := uuid.New()
			f.guestCarts.EXPECT().List(gomock.Any(), guestID).Return(nil, errors.New("redis down"))

			_, err := f.summarizer.Summarize(ctx, shared.GuestBuyer(guestID), now)
			assert.True(t, errs.Is(err, errs.ErrCartStoreFailed))
		})
	})
}

func TestCartSummarizer_SummarizeLines(t *testing.T) {
	f := newSummarizerFixture(t)
	p := builder.NewProductBuilder()
	guestID := uuid.New()

	f.products.EXPECT().FindByIDs(gomock.Any(), []uuid.UUID{p.ID}).
		Return(map[uuid.UUID]shared.ProductSnapshot{p.ID: p.BuildSnapshot()}, nil)

	view, err := f.summarizer.SummarizeLines(context.Background(), shared.GuestBuyer(guestID), []shared.CartLineRecord{
		{ProductID: p.ID, Quantity: 1},
	}, now)
	require.NoError(t, err)

	assert.True(t, view.QualifyingTotal.Equal(testutil.Dec("100")))
	assert.True(t, view.IsEligibleForMembership)
}

func TestCartSummarizer_MembershipView(t *testing.T) {
	f := newSummarizerFixture(t)

	view, err := f.summarizer.MembershipView(context.Background(), shared.GuestBuyer(uuid.New()))
	require.NoError(t, err)

	assert.Equal(t, "none", view.Status)
	assert.False(t, view.IsMember)
	assert.Equal(t, "80.00", view.Threshold.StringFixed(2))
}

func TestProductSnapshot(t *testing.T) {
	s := builder.NewProductBuilder().WithStock(3).WithPromotion("70", nil, nil).BuildSnapshot()

	assert.Equal(t, 3, s.ClampToStock(5))
	assert.Equal(t, 2, s.ClampToStock(2))
	assert.True(t, s.IsSellable())
	assert.True(t, s.InStock())

	p := s.PricingFacts()
	assert.Equal(t, s.ID, p.ID)
	assert.True(t, p.RegularPrice.Equal(s.RegularPrice))
	assert.True(t, p.MemberPrice.Equal(s.MemberPrice))
	require.NotNil(t, p.PromotionalPrice)
	assert.True(t, p.PromotionalPrice.Equal(testutil.Dec("70")))
	assert.True(t, p.IsQualifyingForMembership)
}

func TestBuyer(t *testing.T) {
	userID, guestID := uuid.New(), uuid.New()

	assert.Equal(t, userID, shared.UserBuyer(userID, true).Owner())
	assert.Equal(t, guestID, shared.GuestBuyer(guestID).Owner())
	assert.True(t, shared.GuestBuyer(guestID).IsGuest())
	assert.False(t, shared.Buyer{}.Valid())
	assert.False(t, shared.Buyer{UserID: userID, GuestID: guestID}.IsGuest())
}
