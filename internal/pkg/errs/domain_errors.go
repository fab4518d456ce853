package errs

import "errors"

// Sentinel errors shared by the usecase layers
var (
	// Catalog errors
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product unavailable")

	// Buyer errors
	ErrUserNotFound     = errors.New("user not found")
	ErrBuyerUnresolved  = errors.New("buyer could not be identified")
	ErrGuestCartMissing = errors.New("guest cart missing")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrCartStoreFailed         = errors.New("cart store operation failed")
)
