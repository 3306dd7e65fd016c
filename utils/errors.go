package utils

import "errors"

// Error taxonomy shared by the core engines. Handlers translate these into the
// response envelope; everything else is treated as a server error.
var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrValidation       = errors.New("validation failed")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrUpstream         = errors.New("upstream failure")
)
