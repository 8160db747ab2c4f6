package jwa

import "errors"

// Errors returned by the registry and by Sign.
// Verification never returns an error; a failed check is reported as false.
var (
	// ErrUnknownAlgorithm is returned when a name has no registered algorithm.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrInvalidKey is returned by Sign when the key cannot be used to sign:
	// wrong type, public part only, or modulus below the algorithm minimum.
	ErrInvalidKey = errors.New("invalid key")

	// ErrNotImplemented is returned by algorithms that only carry identity.
	ErrNotImplemented = errors.New("not implemented")

	// ErrDuplicateAlgorithm is returned when a name is registered twice.
	ErrDuplicateAlgorithm = errors.New("algorithm already registered")
)
