package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront-pricing/internal/pkg/cookie"
	"storefront-pricing/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey          = "user_id"
	ctxSessionIsMemberKey = "session_is_member"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			c.Abort()
			return
		}

		session, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			c.Abort()
			return
		}

		setSession(c, session)
		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present. A missing or
// invalid token leaves the request anonymous so the guest cart applies.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		session, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Debug("Ignoring invalid token on optional auth route", "error", err.Error())
			c.Next()
			return
		}

		setSession(c, session)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setSession(c *gin.Context, session usecase.Session) {
	c.Set(ctxUserIDKey, session.UserID)
	c.Set(ctxSessionIsMemberKey, session.IsMember)
	c.Set("jwt_claims", map[string]any{
		"user_id":   session.UserID.String(),
		"is_member": session.IsMember,
	})
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetSessionIsMember returns the token's membership claim. It is advisory only.
func GetSessionIsMember(c *gin.Context) bool {
	return c.GetBool(ctxSessionIsMemberKey)
}
