package stay

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure scenarios. No-data outcomes
// (sold out, nothing bookable) are not errors; they travel as result
// values.
var (
	// General errors
	ErrNotFound      = errors.New("stay: not found")
	ErrAlreadyExists = errors.New("stay: already exists")
	ErrInvalidInput  = errors.New("stay: invalid input")

	// Hotel errors
	ErrHotelNotFound = errors.New("stay: hotel not found")

	// Inventory errors
	ErrRoomProductNotFound = errors.New("stay: room product not found")
	ErrRatePlanNotFound    = errors.New("stay: rate plan not found")
	ErrPairNotFound        = errors.New("stay: room product rate plan pair not found")
	ErrAmenityNotFound     = errors.New("stay: amenity not found")
	ErrRestrictionNotFound = errors.New("stay: restriction not found")

	// Request errors
	ErrInvertedDateRange = errors.New("stay: check-out must be after check-in")
	ErrMissingGuests     = errors.New("stay: guest counts are required")
	ErrRangeTooLarge     = errors.New("stay: date range exceeds the query limit")

	// Pricing errors
	ErrPriceMissing     = errors.New("stay: no daily price for a requested night")
	ErrCurrencyMismatch = errors.New("stay: currency mismatch")

	// Store errors
	ErrStoreNotReady     = errors.New("stay: store not ready")
	ErrStoreClosed       = errors.New("stay: store is closed")
	ErrTransactionFailed = errors.New("stay: transaction failed")
	ErrMigrationFailed   = errors.New("stay: migration failed")

	// Cache errors
	ErrCacheMiss = errors.New("stay: cache miss")
)

// ValidationError represents a validation failure with details.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("stay: validation failed for %s: %s", e.Field, e.Message)
}

func (e ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// IsNotFound returns true if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrHotelNotFound) ||
		errors.Is(err, ErrRoomProductNotFound) ||
		errors.Is(err, ErrRatePlanNotFound) ||
		errors.Is(err, ErrPairNotFound) ||
		errors.Is(err, ErrAmenityNotFound) ||
		errors.Is(err, ErrRestrictionNotFound)
}

// IsValidation returns true if the error stems from rejected input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvertedDateRange) ||
		errors.Is(err, ErrMissingGuests) ||
		errors.Is(err, ErrRangeTooLarge)
}

// IsRetryable returns true if the error is temporary and the operation
// can be retried by the caller.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStoreNotReady) ||
		errors.Is(err, ErrTransactionFailed)
}
