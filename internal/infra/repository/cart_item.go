package repository

import (
	"context"
	"errors"
	"log/slog"

	"storefront-pricing/internal/infra"
	sqlc "storefront-pricing/internal/infra/sqlc/generated"
	"storefront-pricing/internal/pkg/pgconv"
	"storefront-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

const cartTxRetries = 3

type CartItemQueries interface {
	ListCartItems(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.CartItems, error)
	LockCartItemKey(ctx context.Context, db sqlc.DBTX, lockKey string) error
	GetCartItemQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCartItemQuantityParams) (int32, error)
	UpsertCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCartItemParams) error
	DeleteCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteCartItemParams) error
	ClearCartItems(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) error
}

// Database is satisfied by *pgxpool.Pool.
type Database interface {
	sqlc.DBTX
	shared.TxBeginner
}

// CartItemRepository stores authenticated carts as one row per (user, product).
type CartItemRepository struct {
	queries CartItemQueries
	db      Database
	logger  *slog.Logger
}

func NewCartItemRepository(queries CartItemQueries, db Database, logger *slog.Logger) *CartItemRepository {
	return &CartItemRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *CartItemRepository) List(ctx context.Context, userID uuid.UUID) ([]shared.CartLineRecord, error) {
	rows, err := r.queries.ListCartItems(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list cart items", err)
	}

	records := make([]shared.CartLineRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, shared.CartLineRecord{
			ProductID: row.ProductID,
			Quantity:  int(row.Quantity),
		})
	}
	return records, nil
}

// Upsert runs fn under a transaction-scoped advisory lock on (user, product),
// so concurrent writers to the same line apply their changes one at a time.
func (r *CartItemRepository) Upsert(ctx context.Context, userID, productID uuid.UUID, fn shared.QuantityFunc) (int, error) {
	return shared.RunInTxWithRetry(ctx, r.db, cartTxRetries, func(tx sqlc.DBTX) (int, error) {
		if err := r.queries.LockCartItemKey(ctx, tx, lockKey(userID, productID)); err != nil {
			return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to lock cart item", err)
		}

		current, err := r.queries.GetCartItemQuantity(ctx, tx, sqlc.GetCartItemQuantityParams{
			UserID:    userID,
			ProductID: productID,
		})
		if err != nil && !pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read cart item", err)
		}

		next, err := fn(int(current))
		if err != nil {
			return 0, err
		}

		if next <= 0 {
			if err := r.queries.DeleteCartItem(ctx, tx, sqlc.DeleteCartItemParams{UserID: userID, ProductID: productID}); err != nil {
				return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete cart item", err)
			}
			return 0, nil
		}

		err = r.queries.UpsertCartItem(ctx, tx, sqlc.UpsertCartItemParams{
			UserID:    userID,
			ProductID: productID,
			Quantity:  int32(next),
		})
		if err != nil {
			if isForeignKeyViolation(err) {
				return 0, infra.WrapRepoErr(r.logger, infra.KindNotFound, "cart owner or product not found", err)
			}
			if shared.IsRetryableTxError(err) {
				return 0, err
			}
			return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to upsert cart item", err)
		}
		return next, nil
	})
}

func (r *CartItemRepository) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	err := r.queries.DeleteCartItem(ctx, r.db, sqlc.DeleteCartItemParams{UserID: userID, ProductID: productID})
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete cart item", err)
	}
	return nil
}

func (r *CartItemRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := r.queries.ClearCartItems(ctx, r.db, userID); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to clear cart", err)
	}
	return nil
}

func lockKey(userID, productID uuid.UUID) string {
	return "cart_item:" + userID.String() + ":" + productID.String()
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}
