// Package common defines sentinel errors and constants shared by the
// registry store, the enricher and the transports. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Service-level errors. Transports report this instead of the cause.
	ErrorInternal = errors.New("internal error")

	// Validation errors (empty names, reserved ids).
	ErrorValidation = errors.New("validation error")
)
