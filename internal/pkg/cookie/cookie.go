package cookie

import (
	"net/http"
	"time"

	"storefront-pricing/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	AccessTokenCookieName = "access_token"
	GuestCartCookieName   = "guest_cart_id"
)

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

// GetGuestCartID returns uuid.Nil when the cookie is absent or malformed.
func GetGuestCartID(c *gin.Context) uuid.UUID {
	raw, err := c.Cookie(GuestCartCookieName)
	if err != nil || raw == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func SetGuestCartID(c *gin.Context, cfg config.CookieConfig, id uuid.UUID, ttl time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		GuestCartCookieName,
		id.String(),
		int(ttl.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearGuestCartID(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(GuestCartCookieName, "", -1, "/", cfg.Domain, cfg.Secure, true)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
