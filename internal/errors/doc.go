// Package errors provides typed error values for the envstash application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Identifier errors: the project's ENVSTASH_ID link is unusable
//     (ErrCorruptIdentifier)
//   - Storage errors: the secret file or namespace cannot be read or
//     written (ErrMalformedSecretLine, ErrStorageUnavailable)
//   - Input errors: invalid arguments or expected absences
//     (ErrInvalidKey, ErrSecretNotFound)
//
// # Usage
//
// Return errors from internal packages:
//
//	if key == "" {
//	    return serrors.ErrInvalidKey
//	}
//
// Handle errors in the CLI layer:
//
//	value, err := manager.Get(key)
//	if errors.Is(err, serrors.ErrSecretNotFound) {
//	    // Show user-friendly message, exit non-zero
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("%w: %s line %d", serrors.ErrMalformedSecretLine, path, n)
//
// ErrSecretNotFound is the one non-fatal kind: it signals an expected
// absence and callers are free to recover from it.
package errors
