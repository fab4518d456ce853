package bootstrap

import (
	"storefront-pricing/internal/pkg/config"
	"storefront-pricing/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	duration, err := cfg.JWT.TokenDuration()
	if err != nil {
		return nil, err
	}
	return jwt.NewService(cfg.JWT.Secret, duration), nil
}
