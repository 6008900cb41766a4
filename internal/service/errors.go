package service

import "errors"

// Service-level error taxonomy. The original gateway collapsed every failure
// into one shape; handlers map these onto distinct HTTP statuses instead.
var (
	// ErrValidation is returned when a request fails a business-rule check.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidTransition is returned when a lifecycle change is not
	// reachable from the record's current status.
	ErrInvalidTransition = errors.New("invalid status transition")
)
