package commands

import "storefront-pricing/internal/pkg/errs"

var (
	ErrInvalidQuantity    = errs.New("quantity must be at least 1")
	ErrMemberOnlyProduct  = errs.New("product is reserved for members")
	ErrOutOfStock         = errs.New("product is out of stock")
	ErrCartItemNotFound   = errs.New("product is not in the cart")
	ErrMergeRequiresLogin = errs.New("merging a guest cart requires an authenticated buyer")
)
