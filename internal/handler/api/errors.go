package api

import (
	"net/http"

	"storefront-pricing/internal/handler/httperr"
	"storefront-pricing/internal/pkg/errs"
	"storefront-pricing/internal/usecase/commands"
	"storefront-pricing/internal/usecase/queries"
	"storefront-pricing/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

func abortWithUsecaseError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errs.Is(err, commands.ErrInvalidQuantity),
		errs.Is(err, queries.ErrInvalidPreviewItem):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Quantity must be at least 1", nil)
	case errs.Is(err, queries.ErrEmptyPreview),
		errs.Is(err, queries.ErrTooManyPreviewItems):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid preview items", nil)
	case errs.Is(err, errs.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
	case errs.Is(err, commands.ErrCartItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product is not in the cart", nil)
	case errs.Is(err, commands.ErrMemberOnlyProduct):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Product is available to members only", nil)
	case errs.Is(err, errs.ErrProductUnavailable):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Product is not available", nil)
	case errs.Is(err, commands.ErrOutOfStock):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Product is out of stock", nil)
	case errs.Is(err, shared.ErrCartLimitReached):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Cart is full", nil)
	case errs.Is(err, shared.ErrCartConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Cart was modified concurrently, please retry", nil)
	case errs.Is(err, errs.ErrUserNotFound),
		errs.Is(err, errs.ErrBuyerUnresolved),
		errs.Is(err, commands.ErrMergeRequiresLogin):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallbackMsg, nil)
	}
}
