//go:build unit || e2e

package builder

import (
	"time"

	"storefront-pricing/internal/domain/pricing"
	sqlc "storefront-pricing/internal/infra/sqlc/generated"
	"storefront-pricing/internal/pkg/pgconv"
	"storefront-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	ID                        uuid.UUID
	Name                      string
	RegularPrice              decimal.Decimal
	MemberPrice               decimal.Decimal
	IsPromotional             bool
	PromotionalPrice          *decimal.Decimal
	PromotionStartDate        *time.Time
	PromotionEndDate          *time.Time
	IsQualifyingForMembership bool
	MemberOnlyUntil           *time.Time
	EarlyAccessStart          *time.Time
	Stock                     int
	Status                    shared.ProductStatus
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:                        uuid.New(),
		Name:                      "Organic Coffee Beans",
		RegularPrice:              decimal.NewFromInt(100),
		MemberPrice:               decimal.NewFromInt(80),
		IsQualifyingForMembership: true,
		Stock:                     10,
		Status:                    shared.ProductStatusActive,
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ProductBuilder) BuildDomain() pricing.Product {
	return pricing.Product{
		ID:                        b.ID,
		Name:                      b.Name,
		RegularPrice:              b.RegularPrice,
		MemberPrice:               b.MemberPrice,
		IsPromotional:             b.IsPromotional,
		PromotionalPrice:          b.PromotionalPrice,
		PromotionStartDate:        b.PromotionStartDate,
		PromotionEndDate:          b.PromotionEndDate,
		IsQualifyingForMembership: b.IsQualifyingForMembership,
		MemberOnlyUntil:           b.MemberOnlyUntil,
		EarlyAccessStart:          b.EarlyAccessStart,
	}
}

func (b *ProductBuilder) BuildDomainPtr() *pricing.Product {
	p := b.BuildDomain()
	return &p
}

func (b *ProductBuilder) BuildSnapshot() shared.ProductSnapshot {
	return shared.ProductSnapshot{
		ID:                        b.ID,
		Name:                      b.Name,
		RegularPrice:              b.RegularPrice,
		MemberPrice:               b.MemberPrice,
		IsPromotional:             b.IsPromotional,
		PromotionalPrice:          b.PromotionalPrice,
		PromotionStartDate:        b.PromotionStartDate,
		PromotionEndDate:          b.PromotionEndDate,
		IsQualifyingForMembership: b.IsQualifyingForMembership,
		MemberOnlyUntil:           b.MemberOnlyUntil,
		EarlyAccessStart:          b.EarlyAccessStart,
		Stock:                     b.Stock,
		Status:                    b.Status,
	}
}

func (b *ProductBuilder) BuildInfra() sqlc.ListProductPricingByIDsRow {
	promotional := pgtype.Numeric{}
	if b.PromotionalPrice != nil {
		promotional = pgconv.NumericFromDecimal(*b.PromotionalPrice)
	}
	return sqlc.ListProductPricingByIDsRow{
		ID:                        b.ID,
		Name:                      b.Name,
		RegularPrice:              pgconv.NumericFromDecimal(b.RegularPrice),
		MemberPrice:               pgconv.NumericFromDecimal(b.MemberPrice),
		IsPromotional:             b.IsPromotional,
		PromotionalPrice:          promotional,
		PromotionStartDate:        pgconv.TimePtrToPgtype(b.PromotionStartDate),
		PromotionEndDate:          pgconv.TimePtrToPgtype(b.PromotionEndDate),
		IsQualifyingForMembership: b.IsQualifyingForMembership,
		MemberOnlyUntil:           pgconv.TimePtrToPgtype(b.MemberOnlyUntil),
		EarlyAccessStart:          pgconv.TimePtrToPgtype(b.EarlyAccessStart),
		StockQuantity:             int32(b.Stock),
		Status:                    string(b.Status),
	}
}

// Fluent builder methods
func (b *ProductBuilder) WithID(id uuid.UUID) *ProductBuilder {
	b.ID = id
	return b
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.Name = name
	return b
}

func (b *ProductBuilder) WithPrices(regular, member string) *ProductBuilder {
	b.RegularPrice = decimal.RequireFromString(regular)
	b.MemberPrice = decimal.RequireFromString(member)
	return b
}

// WithPromotion sets an active-flagged promotion; nil bounds are open.
func (b *ProductBuilder) WithPromotion(price string, start, end *time.Time) *ProductBuilder {
	p := decimal.RequireFromString(price)
	b.IsPromotional = true
	b.PromotionalPrice = &p
	b.PromotionStartDate = start
	b.PromotionEndDate = end
	return b
}

func (b *ProductBuilder) WithEarlyAccess(start time.Time) *ProductBuilder {
	b.EarlyAccessStart = &start
	return b
}

func (b *ProductBuilder) WithMemberOnlyUntil(until time.Time) *ProductBuilder {
	b.MemberOnlyUntil = &until
	return b
}

func (b *ProductBuilder) WithoutQualification() *ProductBuilder {
	b.IsQualifyingForMembership = false
	return b
}

func (b *ProductBuilder) WithStock(stock int) *ProductBuilder {
	b.Stock = stock
	return b
}

func (b *ProductBuilder) AsInactive() *ProductBuilder {
	b.Status = shared.ProductStatusInactive
	return b
}

func TimePtr(t time.Time) *time.Time {
	return &t
}
