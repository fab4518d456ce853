package shared

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

import (
	"context"

	"storefront-pricing/internal/domain/membership"
	"storefront-pricing/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCartLimitReached = errs.New("cart line limit reached")
	ErrCartConflict     = errs.New("cart was modified concurrently")
)

type ProductReadStore interface {
	// FindByIDs omits ids that do not exist; callers treat an absent id as unavailable.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]ProductSnapshot, error)
}

type MembershipReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*MembershipRecord, error)
}

type ThresholdSource interface {
	// MembershipThreshold always yields a usable threshold.
	MembershipThreshold(ctx context.Context) membership.Threshold
}

// QuantityFunc maps the stored quantity (0 when the line is absent) to the new
// one. Returning 0 removes the line; returning an error aborts the write.
type QuantityFunc func(current int) (int, error)

// CartLineStore holds (product, quantity) pairs per owner. Upsert serializes
// concurrent writers on the same (owner, product) pair.
type CartLineStore interface {
	List(ctx context.Context, owner uuid.UUID) ([]CartLineRecord, error)
	Upsert(ctx context.Context, owner, productID uuid.UUID, fn QuantityFunc) (int, error)
	Remove(ctx context.Context, owner, productID uuid.UUID) error
	Clear(ctx context.Context, owner uuid.UUID) error
}

type UserCartStore interface {
	CartLineStore
}

type GuestCartStore interface {
	CartLineStore
}
