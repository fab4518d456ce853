//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"storefront-pricing/internal/pkg/config"
	"storefront-pricing/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper issues access tokens the way the upstream identity service does.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, isMember bool) string {
	t.Helper()
	duration, err := h.cfg.TokenDuration()
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(userID, isMember)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, isMember bool) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(userID, isMember)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
