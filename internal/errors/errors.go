package errors

import "errors"

// Identifier errors indicate problems with the project's ENVSTASH_ID link.
var (
	// ErrCorruptIdentifier indicates the reserved identifier variable exists
	// but does not hold a canonical UUID. Never auto-repaired: generating a
	// fresh identifier would orphan the existing secret namespace.
	ErrCorruptIdentifier = errors.New("project identifier is malformed")
)

// Storage errors indicate problems reading or writing the secret file.
var (
	// ErrMalformedSecretLine indicates a line in the secret file does not
	// parse as KEY=VALUE. The whole load fails rather than dropping lines,
	// since a partial secret set is a correctness hazard for the caller.
	ErrMalformedSecretLine = errors.New("secret file line is malformed")

	// ErrStorageUnavailable indicates the namespace directory or secret file
	// could not be accessed due to permissions or disk errors.
	ErrStorageUnavailable = errors.New("secret storage is unavailable")
)

// Input errors indicate invalid arguments passed to manager operations.
var (
	// ErrInvalidKey indicates a secret key is empty or contains characters
	// that cannot round-trip through the KEY=VALUE format.
	ErrInvalidKey = errors.New("invalid secret key")

	// ErrSecretNotFound indicates the requested key is not in the secret set.
	// This is an expected-absence signal, not a failure.
	ErrSecretNotFound = errors.New("secret not found")
)
