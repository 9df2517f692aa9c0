package catalog

import (
	"errors"
	"fmt"
)

// Error taxonomy of the catalog boundary. Reference-data and product
// fetch failures are swallowed into per-resource flags by the caller;
// form-submission failures surface the message and leave the form
// editable; ErrAuthRequired on /auth/me is the one error that silently
// clears the session.
var (
	// ErrNotFound: the backend 404ed on a single-resource fetch.
	ErrNotFound = errors.New("catalog: not found")

	// ErrAuthRequired: 401 on an action that needs a valid token.
	ErrAuthRequired = errors.New("catalog: authentication required")

	// ErrUnexpectedFormat: the response body matched none of the known
	// envelope shapes. Recoverable — callers treat the list as empty.
	ErrUnexpectedFormat = errors.New("catalog: unexpected response format")

	// ErrValidation: a client-side precondition failed before any
	// network call was made.
	ErrValidation = errors.New("catalog: validation failed")

	// ErrUnsupportedType: upload rejected before the network call
	// because the file is not a jpeg or png.
	ErrUnsupportedType = errors.New("catalog: unsupported file type")
)

// HTTPError is a non-2xx response from the catalog service. Message is the
// server-provided detail when present, else a per-operation fallback.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("catalog: http %d: %s", e.Status, e.Message)
}

type validationError struct{ reason string }

func (e *validationError) Error() string { return "catalog: validation failed: " + e.reason }
func (e *validationError) Unwrap() error { return ErrValidation }

// ValidationError wraps ErrValidation with a user-facing reason.
func ValidationError(reason string) error {
	return &validationError{reason: reason}
}

// UserMessage extracts the text to show the user for err: the validation
// reason or the server-provided detail when there is one, fallback
// otherwise.
func UserMessage(err error, fallback string) string {
	var vErr *validationError
	if errors.As(err, &vErr) {
		return vErr.reason
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.Message != "" {
		return httpErr.Message
	}
	return fallback
}
