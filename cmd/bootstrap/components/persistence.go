package components

import (
	"log/slog"

	"storefront-pricing/internal/infra/guestcart"
	"storefront-pricing/internal/infra/readstore"
	"storefront-pricing/internal/infra/repository"
	sqlc "storefront-pricing/internal/infra/sqlc/generated"
	"storefront-pricing/internal/pkg/config"
	"storefront-pricing/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	NewDatabase,
	NewRedisClient,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Product
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ProductReadQueries)),
		),
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(shared.ProductReadStore)),
		),
		// Membership
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MembershipReadQueries)),
		),
		fx.Annotate(
			readstore.NewMembershipReadStore,
			fx.As(new(shared.MembershipReadStore)),
		),
		// Threshold
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SystemConfigQueries)),
		),
		fx.Annotate(
			NewThresholdStore,
			fx.As(new(shared.ThresholdSource)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Authenticated carts
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.CartItemQueries)),
		),
		fx.Annotate(
			repository.NewCartItemRepository,
			fx.As(new(shared.UserCartStore)),
		),
		// Guest carts
		fx.Annotate(
			NewGuestCartStore,
			fx.As(new(shared.GuestCartStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewDatabase(pool *pgxpool.Pool) repository.Database {
	return pool
}

func NewRedisClient(client *redis.Client) redis.UniversalClient {
	return client
}

func NewThresholdStore(queries readstore.SystemConfigQueries, db sqlc.DBTX, cfg config.Config, logger *slog.Logger) *readstore.ThresholdStore {
	return readstore.NewThresholdStore(queries, db, cfg.Membership.DefaultThreshold, logger)
}

func NewGuestCartStore(client redis.UniversalClient, cfg config.Config, logger *slog.Logger) *guestcart.RedisStore {
	return guestcart.NewRedisStore(client, cfg.GuestCart, logger)
}
