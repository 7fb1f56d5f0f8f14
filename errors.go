package sitebook

import "errors"

// Every failure of a book operation wraps one of these sentinels so that
// callers can react with errors.Is. A failed operation never leaves a
// partial write behind: entities are exactly as they were before the call.
var (
	// ErrNotFound reports an unknown product or project id.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientStock reports a debit larger than the current stock.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInvalidTransition reports an illegal project status change,
	// including any change attempted from the terminal Completed state.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrProjectClosed reports a material consumption on a Completed project.
	ErrProjectClosed = errors.New("project is completed")
	// ErrEmptyCart reports a purchase commit without any line.
	ErrEmptyCart = errors.New("purchase cart is empty")
	// ErrMissingVendor reports a purchase commit with a blank vendor name.
	ErrMissingVendor = errors.New("vendor name is required")
	// ErrInvalidPurchase reports a purchase line with invalid quantity, rate
	// or GST percent. The whole commit is discarded.
	ErrInvalidPurchase = errors.New("invalid purchase")
	// ErrImport reports a structurally malformed snapshot document.
	ErrImport = errors.New("invalid snapshot document")
)
