package common

import "errors"

// Callers should use errors.Is to match these values.
var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Presentation pipeline errors.
	ErrorInvalidFilter = errors.New("invalid filter")
	ErrorInvalidSort   = errors.New("invalid sort order")

	// Client transport errors.
	ErrorUnexpectedStatus = errors.New("unexpected response status")
)
