package cart

import (
	"errors"

	"storefront-pricing/internal/domain/pricing"

	"github.com/google/uuid"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Line pairs a cart row with its product facts. Product is nil when the
// product no longer exists or is no longer sellable.
type Line struct {
	ProductID uuid.UUID
	Product   *pricing.Product
	Quantity  int
}

func NewLine(productID uuid.UUID, product *pricing.Product, quantity int) (Line, error) {
	if quantity < 1 {
		return Line{}, ErrInvalidQuantity
	}
	return Line{ProductID: productID, Product: product, Quantity: quantity}, nil
}

func (l Line) IsAvailable() bool {
	return l.Product != nil
}
