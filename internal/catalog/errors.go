package catalog

import "errors"

var (
	// ErrNotFound is returned when the event id is not present in the
	// registrable (stored) collection.
	ErrNotFound = errors.New("event not found")
	// ErrInvalidInput is returned when a required field is missing or the
	// ticket count is not a positive integer.
	ErrInvalidInput = errors.New("invalid input")
	// ErrCapacityExceeded is returned when the requested tickets exceed the
	// seats left.
	ErrCapacityExceeded = errors.New("not enough seats available")
	// ErrIdentityRejected is returned when the submitter's email fails the
	// required domain check.
	ErrIdentityRejected = errors.New("email not allowed")
)
