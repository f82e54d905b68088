package errs

import "errors"

// Category markers attached by usecases with Mark and matched by handlers with Is.
var (
	// Booking group errors
	ErrGroupNotFound = errors.New("booking group not found")

	// Pricing errors
	ErrUnpricedBooking = errors.New("booking type has no price for this venue and day")

	// Report errors
	ErrInvalidReportQuery = errors.New("invalid revenue report query")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
