package service

import "errors"

// Sentinel errors that handlers map to HTTP statuses. Storage errors pass
// through services unchanged; these cover the business-rule failures.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidGranularity = errors.New("granularity must be day, week, or month")
)
