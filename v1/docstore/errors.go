package docstore

import (
	"errors"
	"fmt"
)

// Common docstore errors
var (
	// ErrInvalidID is returned when a document is missing a non-empty
	// string "id" field.
	ErrInvalidID = errors.New("docstore: document requires a non-empty string id")

	// ErrInvalidPartitionKey is returned when the partition key path of a
	// container does not resolve to a null, string, number, boolean, or
	// array value on a document being written.
	ErrInvalidPartitionKey = errors.New("docstore: invalid partition key value")

	// ErrInvalidDatabaseID is returned when a database is created with an
	// empty id.
	ErrInvalidDatabaseID = errors.New("docstore: database id must be a non-empty string")

	// ErrInvalidContainerDefinition is returned when a container is created
	// without an id or partition key path.
	ErrInvalidContainerDefinition = errors.New("docstore: container definition requires an id and a partition key path")

	// ErrNotFound is returned when deleting an item that does not exist.
	// Reads of absent items are not errors; they return an empty resource.
	ErrNotFound = errors.New("docstore: not found")

	// ErrUnsupportedQuery is returned when a query string does not match
	// one of the supported statement shapes.
	ErrUnsupportedQuery = errors.New("docstore: unsupported query")

	// ErrUnsupportedCondition is returned when a WHERE fragment does not
	// match one of the supported condition shapes.
	ErrUnsupportedCondition = errors.New("docstore: unsupported condition")

	// ErrMissingParameter is returned when a query references a parameter
	// that was not supplied.
	ErrMissingParameter = errors.New("docstore: missing query parameter")
)

// StatusError carries the numeric status code of the emulated service
// response so callers can branch on it the way they would with a real
// service error.
type StatusError struct {
	// Code is the emulated HTTP-style status code (e.g. 404).
	Code int

	// Err is the underlying error.
	Err error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v (status %d)", e.Err, e.Code)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// newNotFoundError builds the 404-coded error raised by delete operations
// on absent items.
func newNotFoundError(id string) error {
	return &StatusError{
		Code: 404,
		Err:  fmt.Errorf("%w: item %q", ErrNotFound, id),
	}
}

// IsNotFoundError checks if the error is a "resource does not exist" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StatusCode returns the emulated status code carried by err, or 0 when the
// error carries none.
func StatusCode(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code
	}
	return 0
}
