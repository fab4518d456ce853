package components

import (
	"storefront-pricing/internal/handler"
	"storefront-pricing/internal/handler/api"
	"storefront-pricing/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		api.NewMembershipHandler,
		middleware.NewAuthMiddleware,
		middleware.NewGuestCartMiddleware,
		handler.NewHandlers,
		handler.NewMiddlewares,
	),
	fx.Invoke(handler.NewRouter),
)
