package merge

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error returned by Run matches exactly one of them
// with errors.Is, apart from configuration errors.
var (
	ErrResourceNotFound   = errors.New("resource not found")
	ErrInsufficientLength = errors.New("insufficient length")
	ErrWriteFailure       = errors.New("write failure")
)

// PathError records the operation and path that failed.
type PathError struct {
	Op   string // "load", "split" or "write"
	Path string
	Kind error // one of the Err* kinds
	Err  error // underlying cause, may be nil
}

func (e *PathError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *PathError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
