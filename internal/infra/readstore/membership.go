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

type MembershipReadQueries interface {
	GetUserMembership(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetUserMembershipRow, error)
}

// MembershipReadStore always hits the database; membership facts are never cached.
type MembershipReadStore struct {
	queries MembershipReadQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewMembershipReadStore(queries MembershipReadQueries, db sqlc.DBTX, logger *slog.Logger) *MembershipReadStore {
	return &MembershipReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *MembershipReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*shared.MembershipRecord, error) {
	row, err := r.queries.GetUserMembership(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load membership", err)
	}

	return &shared.MembershipRecord{
		UserID:               row.ID,
		IsMember:             row.IsMember,
		HasPendingMembership: row.HasPendingMembership,
	}, nil
}
