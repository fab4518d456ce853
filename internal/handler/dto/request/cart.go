package request

import (
	"storefront-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1,max=999"`
}

// UpdateCartItemRequest accepts 0, which removes the line.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required,min=0,max=999"`
}

type PreviewItem struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1,max=999"`
}

type PreviewEligibilityRequest struct {
	Items []PreviewItem `json:"items" binding:"required,min=1,max=100,dive"`
}

func (r *PreviewEligibilityRequest) ToLineRecords() []shared.CartLineRecord {
	records := make([]shared.CartLineRecord, len(r.Items))
	for i, it := range r.Items {
		records[i] = shared.CartLineRecord{ProductID: it.ProductID, Quantity: it.Quantity}
	}
	return records
}
