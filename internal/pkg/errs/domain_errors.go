package errs

import "errors"

// Sentinels shared across the usecase layers.
var (
	// The caller has no session where one is required.
	ErrUnauthenticated = errors.New("authentication required")
	// The caller's role does not permit the operation.
	ErrForbidden = errors.New("operation forbidden")
)
