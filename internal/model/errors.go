package model

import "errors"

// Common errors used across the application
var (
	// ErrRecordNotFound indicates the target HWID has never been submitted.
	ErrRecordNotFound = errors.New("hwid record not found")

	// ErrMissingHWID indicates a request that did not carry a HWID.
	ErrMissingHWID = errors.New("missing hwid")

	// ErrStorageFailure indicates the registry could not be persisted.
	// Callers must treat the operation as not durably committed.
	ErrStorageFailure = errors.New("storage failure")
)
