package middleware

import (
	"storefront-pricing/internal/pkg/config"
	"storefront-pricing/internal/pkg/cookie"
	"storefront-pricing/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxGuestIDKey = "guest_id"

type GuestCartMiddleware struct {
	cookieCfg config.CookieConfig
	guestCfg  config.GuestCartConfig
}

func NewGuestCartMiddleware(cfg config.Config) *GuestCartMiddleware {
	return &GuestCartMiddleware{
		cookieCfg: cfg.Cookie,
		guestCfg:  cfg.GuestCart,
	}
}

// AssignGuest gives anonymous requests a guest cart id, issuing the cookie on
// first contact. Authenticated requests still get the id of an existing guest
// cart so it can be merged.
func (m *GuestCartMiddleware) AssignGuest() gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := cookie.GetGuestCartID(c)
		if _, authenticated := GetUserID(c); !authenticated && guestID == uuid.Nil {
			guestID = uuid.New()
			cookie.SetGuestCartID(c, m.cookieCfg, guestID, m.guestCfg.TTL)
		}
		if guestID != uuid.Nil {
			c.Set(ctxGuestIDKey, guestID)
		}
		c.Next()
	}
}

func (m *GuestCartMiddleware) ClearGuest(c *gin.Context) {
	cookie.ClearGuestCartID(c, m.cookieCfg)
}

func GetGuestID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxGuestIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// ResolveBuyer prefers the authenticated user over the guest cart.
func ResolveBuyer(c *gin.Context) (shared.Buyer, bool) {
	if userID, ok := GetUserID(c); ok {
		return shared.UserBuyer(userID, GetSessionIsMember(c)), true
	}
	if guestID, ok := GetGuestID(c); ok {
		return shared.GuestBuyer(guestID), true
	}
	return shared.Buyer{}, false
}
