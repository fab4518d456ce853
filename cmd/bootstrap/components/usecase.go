package components

import (
	"storefront-pricing/internal/domain/cart"
	"storefront-pricing/internal/domain/pricing"
	"storefront-pricing/internal/pkg/clock"
	"storefront-pricing/internal/pkg/config"
	"storefront-pricing/internal/usecase"
	"storefront-pricing/internal/usecase/commands"
	"storefront-pricing/internal/usecase/queries"
	"storefront-pricing/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewSystemClock,
	NewMemberOnlyMode,
	fx.Annotate(
		pricing.NewTierResolver,
		fx.As(new(pricing.PriceResolver)),
	),
	fx.Annotate(
		pricing.NewDefaultQualificationEvaluator,
		fx.As(new(pricing.QualificationEvaluator)),
	),
	cart.NewAggregator,
	shared.NewCartSummarizer,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCartCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCartQueries,
		queries.NewMembershipQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewMemberOnlyMode(cfg config.Config) (pricing.MemberOnlyMode, error) {
	return pricing.NewMemberOnlyMode(cfg.Pricing.MemberOnlyMode)
}
