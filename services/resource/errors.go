package resource

import "fmt"

// ValidationError indicates the caller submitted missing or malformed input.
// Fully recoverable by correcting the submission.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// ConflictError indicates a slug or order value is already taken by another
// non-deleted resource of the same kind.
type ConflictError struct {
	Message string
}

func (e ConflictError) Error() string {
	return e.Message
}

// NotFoundError indicates the operation targeted a missing or already-deleted
// resource.
type NotFoundError struct {
	Label string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Label)
}

// UpstreamError wraps a failure from the asset store or the repository.
type UpstreamError struct {
	Op  string
	Err error
}

func (e UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e UpstreamError) Unwrap() error {
	return e.Err
}
