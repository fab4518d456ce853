//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-pricing/internal/pkg/config"
	"storefront-pricing/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuyerRouter(userID uuid.UUID) (*gin.Engine, *shared.Buyer) {
	gin.SetMode(gin.TestMode)
	m := NewGuestCartMiddleware(config.NewTestConfig())
	captured := &shared.Buyer{}

	r := gin.New()
	r.GET("/probe",
		func(c *gin.Context) {
			if userID != uuid.Nil {
				c.Set(ctxUserIDKey, userID)
				c.Set(ctxSessionIsMemberKey, true)
			}
			c.Next()
		},
		m.AssignGuest(),
		func(c *gin.Context) {
			buyer, ok := ResolveBuyer(c)
			if !ok {
				c.Status(http.StatusUnauthorized)
				return
			}
			*captured = buyer
			c.Status(http.StatusOK)
		},
	)
	return r, captured
}

func guestCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == "guest_cart_id" {
			return c
		}
	}
	return nil
}

func TestAssignGuest(t *testing.T) {
	t.Run("success: issues cookie on first anonymous contact", func(t *testing.T) {
		r, buyer := newBuyerRouter(uuid.Nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

		require.Equal(t, http.StatusOK, w.Code)
		issued := guestCookie(w)
		require.NotNil(t, issued)
		assert.True(t, issued.HttpOnly)
		assert.True(t, buyer.IsGuest())
		assert.Equal(t, issued.Value, buyer.GuestID.String())
	})

	t.Run("success: reuses existing cookie", func(t *testing.T) {
		r, buyer := newBuyerRouter(uuid.Nil)
		guestID := uuid.New()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.AddCookie(&http.Cookie{Name: "guest_cart_id", Value: guestID.String()})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Nil(t, guestCookie(w))
		assert.Equal(t, guestID, buyer.GuestID)
	})

	t.Run("success: malformed cookie is replaced", func(t *testing.T) {
		r, _ := newBuyerRouter(uuid.Nil)
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.AddCookie(&http.Cookie{Name: "guest_cart_id", Value: "not-a-uuid"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		issued := guestCookie(w)
		require.NotNil(t, issued)
		_, err := uuid.Parse(issued.Value)
		assert.NoError(t, err)
	})

	t.Run("success: authenticated user wins and gets no new cookie", func(t *testing.T) {
		userID := uuid.New()
		r, buyer := newBuyerRouter(userID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

		assert.Nil(t, guestCookie(w))
		assert.False(t, buyer.IsGuest())
		assert.Equal(t, userID, buyer.UserID)
		assert.True(t, buyer.SessionIsMember)
	})
}
