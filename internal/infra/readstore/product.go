package readstore

import (
	"context"
	"log/slog"

	"storefront-pricing/internal/infra"
	sqlc "storefront-pricing/internal/infra/sqlc/generated"
	"storefront-pricing/internal/pkg/pgconv"
	"storefront-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProductReadQueries interface {
	ListProductPricingByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.ListProductPricingByIDsRow, error)
}

type ProductReadStore struct {
	queries ProductReadQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewProductReadStore(queries ProductReadQueries, db sqlc.DBTX, logger *slog.Logger) *ProductReadStore {
	return &ProductReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

// FindByIDs skips rows whose money columns cannot be read; the cart then
// reports those products as unavailable instead of failing the whole request.
func (r *ProductReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]shared.ProductSnapshot, error) {
	result := make(map[uuid.UUID]shared.ProductSnapshot, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	rows, err := r.queries.ListProductPricingByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list product pricing", err)
	}

	for _, row := range rows {
		snap, err := toProductSnapshot(row)
		if err != nil {
			r.logger.Warn("skipping product with unreadable pricing",
				slog.String("product_id", row.ID.String()),
				slog.String("error", err.Error()))
			continue
		}
		result[row.ID] = snap
	}

	return result, nil
}

func toProductSnapshot(row sqlc.ListProductPricingByIDsRow) (shared.ProductSnapshot, error) {
	regular, err := pgconv.DecimalFromNumeric(row.RegularPrice)
	if err != nil {
		return shared.ProductSnapshot{}, err
	}
	member, err := pgconv.DecimalFromNumeric(row.MemberPrice)
	if err != nil {
		return shared.ProductSnapshot{}, err
	}
	promotional, err := pgconv.DecimalPtrFromNumeric(row.PromotionalPrice)
	if err != nil {
		return shared.ProductSnapshot{}, err
	}

	return shared.ProductSnapshot{
		ID:                        row.ID,
		Name:                      row.Name,
		RegularPrice:              regular,
		MemberPrice:               member,
		IsPromotional:             row.IsPromotional,
		PromotionalPrice:          promotional,
		PromotionStartDate:        pgconv.TimePtrFromPgtype(row.PromotionStartDate),
		PromotionEndDate:          pgconv.TimePtrFromPgtype(row.PromotionEndDate),
		IsQualifyingForMembership: row.IsQualifyingForMembership,
		MemberOnlyUntil:           pgconv.TimePtrFromPgtype(row.MemberOnlyUntil),
		EarlyAccessStart:          pgconv.TimePtrFromPgtype(row.EarlyAccessStart),
		Stock:                     int(row.StockQuantity),
		Status:                    shared.ProductStatus(row.Status),
	}, nil
}
