package shared

import (
	"time"

	"storefront-pricing/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "ACTIVE"
	ProductStatusInactive ProductStatus = "INACTIVE"
	ProductStatusDraft    ProductStatus = "DRAFT"
)

// ProductSnapshot is the catalog row as seen by the cart. The pricing fields
// share their names with pricing.Product so the projection is a field copy.
type ProductSnapshot struct {
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
	Status                    ProductStatus
}

func (s ProductSnapshot) IsSellable() bool {
	return s.Status == ProductStatusActive
}

func (s ProductSnapshot) InStock() bool {
	return s.Stock > 0
}

// ClampToStock caps a requested quantity at the units on hand.
func (s ProductSnapshot) ClampToStock(quantity int) int {
	if quantity > s.Stock {
		return s.Stock
	}
	return quantity
}

func (s ProductSnapshot) PricingFacts() pricing.Product {
	var p pricing.Product
	// Shallow copy: the optional fields stay shared, and neither side mutates them.
	if err := copier.Copy(&p, &s); err != nil {
		return pricing.Product{
			ID:                        s.ID,
			Name:                      s.Name,
			RegularPrice:              s.RegularPrice,
			MemberPrice:               s.MemberPrice,
			IsPromotional:             s.IsPromotional,
			PromotionalPrice:          s.PromotionalPrice,
			PromotionStartDate:        s.PromotionStartDate,
			PromotionEndDate:          s.PromotionEndDate,
			IsQualifyingForMembership: s.IsQualifyingForMembership,
			MemberOnlyUntil:           s.MemberOnlyUntil,
			EarlyAccessStart:          s.EarlyAccessStart,
		}
	}
	return p
}

type MembershipRecord struct {
	UserID               uuid.UUID
	IsMember             bool
	HasPendingMembership bool
}

type CartLineRecord struct {
	ProductID uuid.UUID
	Quantity  int
}

// Buyer identifies whose cart a request touches. Exactly one of UserID and
// GuestID is set.
type Buyer struct {
	UserID          uuid.UUID
	GuestID         uuid.UUID
	SessionIsMember bool
}

func UserBuyer(userID uuid.UUID, sessionIsMember bool) Buyer {
	return Buyer{UserID: userID, SessionIsMember: sessionIsMember}
}

func GuestBuyer(guestID uuid.UUID) Buyer {
	return Buyer{GuestID: guestID}
}

func (b Buyer) IsGuest() bool {
	return b.UserID == uuid.Nil
}

func (b Buyer) Owner() uuid.UUID {
	if b.IsGuest() {
		return b.GuestID
	}
	return b.UserID
}

func (b Buyer) Valid() bool {
	return b.Owner() != uuid.Nil
}
