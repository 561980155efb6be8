package economy

import "errors"

var (
	ErrStoreUnavailable  = errors.New("store unavailable")
	ErrWriteFailed       = errors.New("write failed")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNotFound          = errors.New("collectible not found")
	ErrGenerationFailed  = errors.New("generation failed")
	ErrResellFailed      = errors.New("resell failed")

	// ErrPartiallyApplied means a compound write could not be compensated,
	// the store holds the first half of the operation only.
	ErrPartiallyApplied = errors.New("partially applied")
)
