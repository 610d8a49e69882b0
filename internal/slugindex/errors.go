package slugindex

import "errors"

var (
	// ErrMissingRootDirectory is reported when the content root does not exist.
	// It is not fatal: the traversal is still attempted.
	ErrMissingRootDirectory = errors.New("content root directory does not exist")

	// ErrIndexWriteFailure wraps any failure to persist the link map.
	// The previous file, if any, is left in place.
	ErrIndexWriteFailure = errors.New("failed to write slug index")

	// ErrInvalidIndex is returned by Load when the artifact is not a
	// JSON object of string values.
	ErrInvalidIndex = errors.New("invalid slug index")
)
