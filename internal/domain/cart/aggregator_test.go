//go:build unit

package cart_test

import (
	"testing"
	"time"

	"storefront-pricing/internal/domain/cart"
	"storefront-pricing/internal/domain/membership"
	"storefront-pricing/internal/domain/pricing"
	"storefront-pricing/tests/common/builder"
	"storefront-pricing/tests/common/testutil"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now       = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	yesterday = now.Add(-24 * time.Hour)
	tomorrow  = now.Add(24 * time.Hour)
)

// alwaysQualifies ignores promotions, so only the aggregator's own guard keeps
// promotional lines out of the qualifying total.
type alwaysQualifies struct{}

func (alwaysQualifies) Qualifies(pricing.Product, time.Time) bool { return true }

func newAggregator() *cart.Aggregator {
	return cart.NewAggregator(
		pricing.NewTierResolver(pricing.MemberOnlyVisibility),
		pricing.NewDefaultQualificationEvaluator(),
	)
}

func line(t *testing.T, b *builder.ProductBuilder, qty int) cart.Line {
	t.Helper()
	p := b.BuildDomainPtr()
	l, err := cart.NewLine(p.ID, p, qty)
	require.NoError(t, err)
	return l
}

func TestAggregator_Scenarios(t *testing.T) {
	threshold := membership.DefaultThreshold()

	t.Run("A: 会員は会員価格", func(t *testing.T) {
		s, err := newAggregator().Summarize([]cart.Line{
			line(t, builder.NewProductBuilder(), 1),
		}, true, threshold, now)
		require.NoError(t, err)
		require.Len(t, s.Lines, 1)

		l := s.Lines[0]
		assert.True(t, l.UnitPrice.Equal(testutil.Dec("80")))
		assert.Equal(t, pricing.PriceTypeMember, l.PriceType)
		assert.True(t, l.UnitSavings.Equal(testutil.Dec("20")))
		assert.True(t, s.MemberDiscount.Equal(testutil.Dec("20")))
	})

	t.Run("B: プロモ価格の行は資格に数えない", func(t *testing.T) {
		s, err := newAggregator().Summarize([]cart.Line{
			line(t, builder.NewProductBuilder().WithPromotion("60", &yesterday, &tomorrow), 1),
		}, true, threshold, now)
		require.NoError(t, err)
		require.Len(t, s.Lines, 1)

		l := s.Lines[0]
		assert.True(t, l.UnitPrice.Equal(testutil.Dec("60")))
		assert.Equal(t, pricing.PriceTypePromotional, l.PriceType)
		assert.False(t, l.Qualifies)
		assert.True(t, s.QualifyingTotal.IsZero())
		assert.True(t, s.PromotionalDiscount.Equal(testutil.Dec("40")))
	})

	t.Run("C: しきい値到達で資格あり", func(t *testing.T) {
		s, err := newAggregator().Summarize([]cart.Line{
			line(t, builder.NewProductBuilder().WithPrices("50", "45"), 1),
			line(t, builder.NewProductBuilder().WithPrices("40", "35"), 1),
		}, false, threshold, now)
		require.NoError(t, err)

		want := expectedTotals{
			QualifyingTotal:           testutil.Dec("90"),
			IsEligibleForMembership:   true,
			MembershipProgressPercent: testutil.Dec("100"),
			AmountNeededForMembership: testutil.Dec("0"),
			Total:                     testutil.Dec("90"),
		}
		if diff := cmp.Diff(want, totalsOf(s), testutil.DecimalComparer); diff != "" {
			t.Errorf("totals mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("D: 進捗率と不足額", func(t *testing.T) {
		s, err := newAggregator().Summarize([]cart.Line{
			line(t, builder.NewProductBuilder().WithPrices("30", "25"), 1),
		}, false, threshold, now)
		require.NoError(t, err)

		want := expectedTotals{
			QualifyingTotal:           testutil.Dec("30"),
			MembershipProgressPercent: testutil.Dec("37.5"),
			AmountNeededForMembership: testutil.Dec("50"),
			Total:                     testutil.Dec("30"),
		}
		if diff := cmp.Diff(want, totalsOf(s), testutil.DecimalComparer); diff != "" {
			t.Errorf("totals mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("E: 先行販売前は会員でも通常価格", func(t *testing.T) {
		s, err := newAggregator().Summarize([]cart.Line{
			line(t, builder.NewProductBuilder().WithEarlyAccess(tomorrow), 1),
		}, true, threshold, now)
		require.NoError(t, err)
		require.Len(t, s.Lines, 1)

		assert.True(t, s.Lines[0].UnitPrice.Equal(testutil.Dec("100")))
		assert.Equal(t, pricing.PriceTypeRegular, s.Lines[0].PriceType)
	})
}

func TestAggregator_Invariants(t *testing.T) {
	threshold := membership.DefaultThreshold()

	t.Run("評価器に関わらずプロモ行は資格に数えない", func(t *testing.T) {
		agg := cart.NewAggregator(pricing.NewTierResolver(""), alwaysQualifies{})

		s, err := agg.Summarize([]cart.Line{
			line(t, builder.NewProductBuilder().WithPromotion("60", nil, nil), 2),
			line(t, builder.NewProductBuilder().WithPrices("20", "15"), 1),
		}, false, threshold, now)
		require.NoError(t, err)

		assert.False(t, s.Lines[0].Qualifies)
		assert.True(t, s.Lines[1].Qualifies)
		assert.True(t, s.QualifyingTotal.Equal(testutil.Dec("20")))
	})

	t.Run("しきい値ちょうどで資格あり", func(t *testing.T) {
		s, err := newAggregator().Summarize([]cart.Line{
			line(t, builder.NewProductBuilder().WithPrices("80", "70"), 1),
		}, false, threshold, now)
		require.NoError(t, err)
		assert.True(t, s.IsEligibleForMembership)
		assert.True(t, s.AmountNeededForMembership.IsZero())
	})

	t.Run("しきい値未満は資格なし", func(t *testing.T) {
		s, err := newAggregator().Summarize([]cart.Line{
			line(t, builder.NewProductBuilder().WithPrices("79.99", "70"), 1),
		}, false, threshold, now)
		require.NoError(t, err)
		assert.False(t, s.IsEligibleForMembership)
		assert.True(t, s.AmountNeededForMembership.Equal(testutil.Dec("0.01")))
		assert.True(t, s.MembershipProgressPercent.LessThan(testutil.Dec("100")))
	})

	t.Run("行を追加しても資格合計は減らない", func(t *testing.T) {
		agg := newAggregator()
		lines := []cart.Line{
			line(t, builder.NewProductBuilder().WithPrices("10", "8"), 1),
		}
		prev, err := agg.Summarize(lines, false, threshold, now)
		require.NoError(t, err)

		for _, b := range []*builder.ProductBuilder{
			builder.NewProductBuilder().WithPromotion("5", nil, nil),
			builder.NewProductBuilder().WithoutQualification(),
			builder.NewProductBuilder().WithPrices("25", "20"),
		} {
			lines = append(lines, line(t, b, 1))
			next, err := agg.Summarize(lines, false, threshold, now)
			require.NoError(t, err)
			assert.True(t, next.QualifyingTotal.GreaterThanOrEqual(prev.QualifyingTotal))
			prev = next
		}
	})

	t.Run("同じ入力なら同じ結果", func(t *testing.T) {
		agg := newAggregator()
		lines := []cart.Line{
			line(t, builder.NewProductBuilder().WithPromotion("60", &yesterday, &tomorrow), 1),
			line(t, builder.NewProductBuilder(), 3),
		}

		first, err := agg.Summarize(lines, true, threshold, now)
		require.NoError(t, err)
		second, err := agg.Summarize(lines, true, threshold, now)
		require.NoError(t, err)

		if diff := cmp.Diff(first, second, testutil.DecimalComparer); diff != "" {
			t.Errorf("summary changed between calls (-first +second):\n%s", diff)
		}
	})

	t.Run("保留中の会員は非会員として計算", func(t *testing.T) {
		facts := membership.Facts{SessionIsMember: true, PersistedIsMember: true, HasPendingMembership: true}

		s, err := newAggregator().Summarize([]cart.Line{
			line(t, builder.NewProductBuilder(), 1),
		}, facts.IsMember(), threshold, now)
		require.NoError(t, err)
		assert.Equal(t, pricing.PriceTypeRegular, s.Lines[0].PriceType)
		assert.True(t, s.Total.Equal(testutil.Dec("100")))
	})

	t.Run("商品情報のない行は除外", func(t *testing.T) {
		missing := uuid.New()
		s, err := newAggregator().Summarize([]cart.Line{
			{ProductID: missing, Quantity: 2},
			line(t, builder.NewProductBuilder(), 1),
		}, false, threshold, now)
		require.NoError(t, err)

		assert.Len(t, s.Lines, 1)
		assert.Equal(t, []uuid.UUID{missing}, s.UnavailableProductIDs)
		assert.Equal(t, 1, s.ItemCount)
	})

	t.Run("数量0の行はエラー", func(t *testing.T) {
		p := builder.NewProductBuilder().BuildDomainPtr()
		_, err := newAggregator().Summarize([]cart.Line{
			{ProductID: p.ID, Product: p, Quantity: 0},
		}, false, threshold, now)
		assert.ErrorIs(t, err, cart.ErrInvalidQuantity)

		_, err = cart.NewLine(p.ID, p, -1)
		assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
	})

	t.Run("合計は最後に丸める", func(t *testing.T) {
		s, err := newAggregator().Summarize([]cart.Line{
			line(t, builder.NewProductBuilder().WithPrices("0.105", "0.1"), 3),
		}, false, threshold, now)
		require.NoError(t, err)

		// 0.315 rounds once, not 3 x 0.11
		assert.True(t, s.Subtotal.Equal(testutil.Dec("0.32")))
		assert.True(t, s.Lines[0].LineTotal.Equal(testutil.Dec("0.32")))
		assert.True(t, s.Lines[0].UnitPrice.Equal(testutil.Dec("0.11")))
	})

	t.Run("空のカート", func(t *testing.T) {
		s, err := newAggregator().Summarize(nil, false, threshold, now)
		require.NoError(t, err)

		assert.True(t, s.IsEmpty())
		assert.True(t, s.Total.IsZero())
		assert.True(t, s.MembershipProgressPercent.IsZero())
		assert.True(t, s.AmountNeededForMembership.Equal(testutil.Dec("80")))
		assert.NotNil(t, s.Lines)
	})

	t.Run("割引の内訳", func(t *testing.T) {
		s, err := newAggregator().Summarize([]cart.Line{
			line(t, builder.NewProductBuilder(), 2),
			line(t, builder.NewProductBuilder().WithPromotion("60", nil, nil), 1),
		}, true, threshold, now)
		require.NoError(t, err)

		assert.Equal(t, 3, s.ItemCount)
		assert.True(t, s.Subtotal.Equal(testutil.Dec("300")))
		assert.True(t, s.MemberSubtotal.Equal(testutil.Dec("240")))
		assert.True(t, s.ApplicableSubtotal.Equal(testutil.Dec("220")))
		assert.True(t, s.MemberDiscount.Equal(testutil.Dec("40")))
		assert.True(t, s.PromotionalDiscount.Equal(testutil.Dec("40")))
		assert.True(t, s.QualifyingTotal.Equal(testutil.Dec("160")))
	})
}

type expectedTotals struct {
	QualifyingTotal           decimal.Decimal
	IsEligibleForMembership   bool
	MembershipProgressPercent decimal.Decimal
	AmountNeededForMembership decimal.Decimal
	Total                     decimal.Decimal
}

func totalsOf(s *cart.Summary) expectedTotals {
	return expectedTotals{
		QualifyingTotal:           s.QualifyingTotal,
		IsEligibleForMembership:   s.IsEligibleForMembership,
		MembershipProgressPercent: s.MembershipProgressPercent,
		AmountNeededForMembership: s.AmountNeededForMembership,
		Total:                     s.Total,
	}
}
