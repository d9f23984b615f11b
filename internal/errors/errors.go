// Package errors provides sentinel errors and custom error types for the
// headsup application. Use errors.Is() and errors.As() to check for specific
// error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNoBranchInfo indicates that no branch information is available
	// for a path
	ErrNoBranchInfo = errors.New("no branch information available")

	// ErrNotARepository indicates that a path is not inside a git repository
	ErrNotARepository = errors.New("not a git repository")
)

// NotARepositoryError represents an error when a path is not inside a
// git repository
type NotARepositoryError struct {
	Path string
	Err  error
}

func (e *NotARepositoryError) Error() string {
	return fmt.Sprintf("%s is not inside a git repository", e.Path)
}

// Is returns true if the target error is ErrNotARepository
func (e *NotARepositoryError) Is(target error) bool {
	return target == ErrNotARepository
}

// Unwrap returns the underlying error
func (e *NotARepositoryError) Unwrap() error {
	return e.Err
}

// NewNotARepositoryError creates a new NotARepositoryError
func NewNotARepositoryError(path string, err error) *NotARepositoryError {
	return &NotARepositoryError{Path: path, Err: err}
}
