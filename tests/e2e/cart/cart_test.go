//go:build e2e

package cart_test

import (
	"fmt"
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"
	"time"

	"storefront-pricing/internal/handler/dto/request"
	"storefront-pricing/internal/handler/dto/response"
	"storefront-pricing/tests/common/authtest"
	"storefront-pricing/tests/common/builder"
	"storefront-pricing/tests/common/dbtest"
	"storefront-pricing/tests/common/httptest"
	"storefront-pricing/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	cartURL      = "/api/cart"
	cartItemsURL = "/api/cart/items"
	cartItemURL  = "/api/cart/items/%s"
	mergeURL     = "/api/cart/merge"
)

type CartSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *CartSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *CartSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestCartSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CartSuite))
}

func decodeCart(t *testing.T, w *stdhttptest.ResponseRecorder) response.CartResponse {
	t.Helper()
	var body response.CartResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
	return body
}

func addItem(productID uuid.UUID, qty int) request.AddCartItemRequest {
	return request.AddCartItemRequest{ProductID: productID, Quantity: qty}
}

var totalsOnly = cmpopts.IgnoreFields(response.CartResponse{},
	"OwnerID", "Membership", "Lines", "UnavailableProductIDs", "PricedAt")

// =============================================================================
// Guest carts
// =============================================================================

func (s *CartSuite) TestGuestCart() {
	s.Run("Normal case: first contact issues a guest cookie and prices at regular rate", func() {
		t := s.T()
		productID := dbtest.CreateTestProduct(t, s.DB, builder.NewProductBuilder().WithPrices("30.00", "25.00"), uuid.Nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, addItem(productID, 2), "")
		got := decodeCart(t, w)

		guestCookie := httptest.GuestCookie(w)
		require.NotNil(t, guestCookie)
		require.Equal(t, guestCookie.Value, got.OwnerID)

		want := response.CartResponse{
			IsGuest:                   true,
			ItemCount:                 2,
			Subtotal:                  "60.00",
			MemberSubtotal:            "50.00",
			ApplicableSubtotal:        "60.00",
			MemberDiscount:            "0.00",
			PromotionalDiscount:       "0.00",
			QualifyingTotal:           "60.00",
			MembershipThreshold:       "80.00",
			IsEligibleForMembership:   false,
			MembershipProgressPercent: "75.00",
			AmountNeededForMembership: "20.00",
			Total:                     "60.00",
		}
		if diff := cmp.Diff(want, got, totalsOnly); diff != "" {
			t.Errorf("cart totals mismatch (-want +got):\n%s", diff)
		}
		require.Len(t, got.Lines, 1)
		require.Equal(t, "regular", got.Lines[0].PriceType)
	})

	s.Run("Normal case: adding the same product with the cookie increments the line", func() {
		t := s.T()
		productID := dbtest.CreateTestProduct(t, s.DB, builder.NewProductBuilder(), uuid.Nil)

		first := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, addItem(productID, 1), "")
		require.Equal(t, http.StatusOK, first.Code, first.Body.String())
		cookies := httptest.ExtractCookies(first)

		second := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, cartItemsURL, addItem(productID, 2), cookies, "")
		got := decodeCart(t, second)

		require.Len(t, got.Lines, 1)
		require.Equal(t, 3, got.Lines[0].Quantity)
		require.Equal(t, "300.00", got.Total)
	})

	s.Run("Normal case: quantity 0 removes the line and clear empties the cart", func() {
		t := s.T()
		a := dbtest.CreateTestProduct(t, s.DB, builder.NewProductBuilder().WithName("A"), uuid.Nil)
		b := dbtest.CreateTestProduct(t, s.DB, builder.NewProductBuilder().WithName("B"), uuid.Nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, addItem(a, 1), "")
		cookies := httptest.ExtractCookies(w)
		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, cartItemsURL, addItem(b, 1), cookies, "")
		require.Len(t, decodeCart(t, w).Lines, 2)

		zero := 0
		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodPatch, fmt.Sprintf(cartItemURL, a),
			request.UpdateCartItemRequest{Quantity: &zero}, cookies, "")
		got := decodeCart(t, w)
		require.Len(t, got.Lines, 1)
		require.Equal(t, b.String(), got.Lines[0].ProductID)

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodDelete, cartURL, nil, cookies, "")
		got = decodeCart(t, w)
		require.Zero(t, got.ItemCount)
		require.Equal(t, "0.00", got.Total)
	})

	s.Run("Error case: unknown product returns 404", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, addItem(uuid.New(), 1), "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Product not found")
	})

	s.Run("Error case: guest cannot add a member-only product", func() {
		t := s.T()
		productID := dbtest.CreateTestProduct(t, s.DB,
			builder.NewProductBuilder().WithMemberOnlyUntil(time.Now().Add(24*time.Hour)), uuid.Nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, addItem(productID, 1), "")
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "members only")
	})
}

// =============================================================================
// Authenticated carts
// =============================================================================

func (s *CartSuite) TestUserCart() {
	s.Run("Normal case: member pays the member price", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "member@example.com", true)
		productID := dbtest.CreateTestProduct(t, s.DB, builder.NewProductBuilder().WithPrices("50.00", "40.00"), uuid.Nil)
		token := s.jwt.GenerateToken(t, userID, true)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, addItem(productID, 2), token)
		got := decodeCart(t, w)

		require.False(t, got.IsGuest)
		require.Equal(t, userID.String(), got.OwnerID)
		require.Equal(t, "member", got.Lines[0].PriceType)
		require.Equal(t, "80.00", got.Total)
		require.Equal(t, "20.00", got.MemberDiscount)
		require.True(t, got.IsEligibleForMembership)
		require.Equal(t, 1, dbtest.CountCartItems(t, s.DB, userID))
	})

	s.Run("Normal case: stale member session is priced from the stored flag", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "lapsed@example.com", false)
		productID := dbtest.CreateTestProduct(t, s.DB, builder.NewProductBuilder().WithPrices("50.00", "40.00"), uuid.Nil)
		token := s.jwt.GenerateToken(t, userID, true)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, addItem(productID, 1), token)
		got := decodeCart(t, w)

		require.Equal(t, "regular", got.Lines[0].PriceType)
		require.Equal(t, "50.00", got.Total)
		require.True(t, got.Membership.SessionStale)
		require.False(t, got.Membership.IsMember)
	})

	s.Run("Normal case: pending activation withholds member pricing", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "pending@example.com", true)
		dbtest.CreatePendingMembership(t, s.DB, userID)
		productID := dbtest.CreateTestProduct(t, s.DB, builder.NewProductBuilder().WithPrices("50.00", "40.00"), uuid.Nil)
		token := s.jwt.GenerateToken(t, userID, true)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, addItem(productID, 1), token)
		got := decodeCart(t, w)

		require.Equal(t, "pending", got.Membership.Status)
		require.Equal(t, "regular", got.Lines[0].PriceType)

		dbtest.ActivateMembership(t, s.DB, userID)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, token)
		got = decodeCart(t, w)

		require.Equal(t, "active", got.Membership.Status)
		require.Equal(t, "member", got.Lines[0].PriceType)
		require.Equal(t, "40.00", got.Total)
	})

	s.Run("Normal case: promotional and non-qualifying lines do not count toward the threshold", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "shopper@example.com", false)
		giftCards := dbtest.CreateTestCategory(t, s.DB, "Gift Cards", false)

		now := time.Now()
		promo := dbtest.CreateTestProduct(t, s.DB, builder.NewProductBuilder().
			WithName("Promo").
			WithPrices("40.00", "35.00").
			WithPromotion("30.00", builder.TimePtr(now.Add(-time.Hour)), builder.TimePtr(now.Add(time.Hour))), uuid.Nil)
		giftCard := dbtest.CreateTestProduct(t, s.DB, builder.NewProductBuilder().
			WithName("Gift Card").
			WithPrices("25.00", "25.00"), giftCards)
		regular := dbtest.CreateTestProduct(t, s.DB, builder.NewProductBuilder().
			WithName("Regular").
			WithPrices("20.00", "18.00"), uuid.Nil)
		token := s.jwt.GenerateToken(t, userID, false)

		for _, id := range []uuid.UUID{promo, giftCard, regular} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, addItem(id, 1), token)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}

		got := decodeCart(t, httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, token))

		require.Equal(t, "75.00", got.Total)
		require.Equal(t, "10.00", got.PromotionalDiscount)
		require.Equal(t, "20.00", got.QualifyingTotal)
		require.Equal(t, "60.00", got.AmountNeededForMembership)
		require.False(t, got.IsEligibleForMembership)
	})

	s.Run("Normal case: threshold comes from system config", func() {
		t := s.T()
		dbtest.SetSystemConfig(t, s.DB, "membership_threshold", "50.00")
		userID := dbtest.CreateTestUser(t, s.DB, "threshold@example.com", false)
		productID := dbtest.CreateTestProduct(t, s.DB, builder.NewProductBuilder().WithPrices("50.00", "45.00"), uuid.Nil)
		token := s.jwt.GenerateToken(t, userID, false)

		got := decodeCart(t, httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, addItem(productID, 1), token))

		require.Equal(t, "50.00", got.MembershipThreshold)
		require.True(t, got.IsEligibleForMembership)
		require.Equal(t, "100.00", got.MembershipProgressPercent)
		require.Equal(t, "0.00", got.AmountNeededForMembership)
	})

	s.Run("Normal case: removed product is reported as unavailable", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "gone@example.com", false)
		productID := dbtest.CreateTestProduct(t, s.DB, builder.NewProductBuilder(), uuid.Nil)
		token := s.jwt.GenerateToken(t, userID, false)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, addItem(productID, 1), token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		_, err := s.DB.Exec(t.Context(), "UPDATE products SET status = 'INACTIVE' WHERE id = $1", productID)
		require.NoError(t, err)

		got := decodeCart(t, httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, token))
		require.Empty(t, got.Lines)
		require.Equal(t, []string{productID.String()}, got.UnavailableProductIDs)
		require.Equal(t, "0.00", got.Total)
	})

	s.Run("Error case: expired token falls back to a guest cart", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "expired@example.com", true)
		token := s.jwt.CreateExpiredToken(t, userID, true)

		got := decodeCart(t, httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, token))
		require.True(t, got.IsGuest)
	})
}

// =============================================================================
// Merge
// =============================================================================

func (s *CartSuite) TestMergeGuestCart() {
	s.Run("Normal case: guest lines move into the user cart", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "merge@example.com", false)
		a := dbtest.CreateTestProduct(t, s.DB, builder.NewProductBuilder().WithName("A").WithPrices("10.00", "9.00"), uuid.Nil)
		b := dbtest.CreateTestProduct(t, s.DB, builder.NewProductBuilder().WithName("B").WithPrices("20.00", "18.00"), uuid.Nil)
		token := s.jwt.GenerateToken(t, userID, false)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, addItem(a, 2), "")
		guestCookies := httptest.ExtractCookies(w)
		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, cartItemsURL, addItem(b, 1), guestCookies, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, addItem(a, 1), token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, mergeURL, nil, guestCookies, token)
		got := decodeCart(t, w)

		require.False(t, got.IsGuest)
		require.Equal(t, 4, got.ItemCount)
		require.Equal(t, "50.00", got.Total)
		require.Equal(t, 2, dbtest.CountCartItems(t, s.DB, userID))

		cleared := httptest.GuestCookie(w)
		require.NotNil(t, cleared)
		require.Negative(t, cleared.MaxAge)
	})

	s.Run("Error case: merge requires a token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, mergeURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})
}
