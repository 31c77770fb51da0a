package graph

import (
	"errors"
	"fmt"
)

// ErrGraphClosed is returned when an operation is attempted on a graph that
// has been closed. This is always a caller bug to fix, never a transient
// condition.
var ErrGraphClosed = errors.New("graph has been closed")

// ErrValidation is returned when host-side input is rejected before any
// native call is made. It never wraps a native cause and is always
// recoverable.
type ErrValidation struct {
	Param  string
	Reason string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Param, e.Reason)
}

// ErrGraphCreateFailed is returned when the native side could not create a
// graph instance
type ErrGraphCreateFailed struct {
	Cause error
}

func (e *ErrGraphCreateFailed) Error() string {
	return fmt.Sprintf("failed to create graph: %v", e.Cause)
}

func (e *ErrGraphCreateFailed) Unwrap() error {
	return e.Cause
}

// ErrVertexCreateFailed is returned when vertex creation fails natively. It
// carries the attempted id and label so the failure can be diagnosed without
// re-deriving them from the wrapped native error.
type ErrVertexCreateFailed struct {
	ID    string
	Label string
	Cause error
}

func (e *ErrVertexCreateFailed) Error() string {
	return fmt.Sprintf("failed to add vertex (id %q, label %q): %v", e.ID, e.Label, e.Cause)
}

func (e *ErrVertexCreateFailed) Unwrap() error {
	return e.Cause
}

// ErrEdgeCreateFailed is returned when edge creation fails natively
type ErrEdgeCreateFailed struct {
	ID    string
	Label string
	Out   string
	In    string
	Cause error
}

func (e *ErrEdgeCreateFailed) Error() string {
	return fmt.Sprintf("failed to add edge (label %q, %s -> %s): %v", e.Label, e.Out, e.In, e.Cause)
}

func (e *ErrEdgeCreateFailed) Unwrap() error {
	return e.Cause
}
