package readstore

import (
	"context"
	"log/slog"

	"storefront-pricing/internal/domain/membership"
	sqlc "storefront-pricing/internal/infra/sqlc/generated"
	"storefront-pricing/internal/pkg/pgconv"
)

const MembershipThresholdKey = "membership_threshold"

type SystemConfigQueries interface {
	GetSystemConfigValue(ctx context.Context, db sqlc.DBTX, key string) (string, error)
}

// ThresholdStore resolves the qualification threshold in order: the
// system_config row, the configured default, then membership.DefaultThresholdAmount.
type ThresholdStore struct {
	queries  SystemConfigQueries
	db       sqlc.DBTX
	fallback membership.Threshold
	logger   *slog.Logger
}

func NewThresholdStore(queries SystemConfigQueries, db sqlc.DBTX, configuredDefault string, logger *slog.Logger) *ThresholdStore {
	fallback, err := membership.ParseThreshold(configuredDefault)
	if err != nil {
		logger.Warn("invalid configured membership threshold, using built-in default",
			slog.String("value", configuredDefault),
			slog.String("default", membership.DefaultThresholdAmount.StringFixed(2)))
		fallback = membership.DefaultThreshold()
	}

	return &ThresholdStore{
		queries:  queries,
		db:       db,
		fallback: fallback,
		logger:   logger,
	}
}

func (s *ThresholdStore) Fallback() membership.Threshold {
	return s.fallback
}

func (s *ThresholdStore) MembershipThreshold(ctx context.Context) membership.Threshold {
	raw, err := s.queries.GetSystemConfigValue(ctx, s.db, MembershipThresholdKey)
	if err != nil {
		if !pgconv.IsNoRows(err) {
			s.logger.Error("failed to read membership threshold, using fallback",
				slog.String("error", err.Error()))
		}
		return s.fallback
	}

	threshold, err := membership.ParseThreshold(raw)
	if err != nil {
		s.logger.Warn("unusable membership threshold in system_config, using fallback",
			slog.String("value", raw))
		return s.fallback
	}
	return threshold
}
