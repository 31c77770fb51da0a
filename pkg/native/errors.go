package native

import (
	"fmt"
	"strings"
)

// ErrLibraryNotFound is returned when the native shared library cannot be
// located on any of the candidate paths
type ErrLibraryNotFound struct {
	Name  string
	Tried []string
}

func (e *ErrLibraryNotFound) Error() string {
	return fmt.Sprintf("could not find %s, tried: %s", e.Name, strings.Join(e.Tried, ", "))
}

// ErrLibraryLoadFailed is returned when the native shared library exists but
// cannot be loaded, or a required entry point is absent
type ErrLibraryLoadFailed struct {
	Path   string
	Symbol string
	Cause  error
}

func (e *ErrLibraryLoadFailed) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("failed to load native library at %s: missing entry point %s", e.Path, e.Symbol)
	}
	return fmt.Sprintf("failed to load native library at %s: %v", e.Path, e.Cause)
}

func (e *ErrLibraryLoadFailed) Unwrap() error {
	return e.Cause
}

// ErrUnsupportedPlatform is returned when the running platform is not one of
// the three the native library is built for
type ErrUnsupportedPlatform struct {
	Platform string
}

func (e *ErrUnsupportedPlatform) Error() string {
	return fmt.Sprintf("unsupported platform: %s", e.Platform)
}

// ErrNativeOperation is returned when a native call signals failure through
// its sentinel return (null handle or negative length). LastError carries the
// native side's last error message when it could be retrieved.
type ErrNativeOperation struct {
	Op        string
	Detail    string
	LastError string
}

func (e *ErrNativeOperation) Error() string {
	msg := fmt.Sprintf("native operation %q failed", e.Op)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.LastError != "" {
		msg += " (native: " + e.LastError + ")"
	}
	return msg
}

// ErrBufferTooSmall is returned when a string-returning native call keeps
// reporting a required length at or above the buffer handed to it
type ErrBufferTooSmall struct {
	Op     string
	Size   int
	Needed int
}

func (e *ErrBufferTooSmall) Error() string {
	return fmt.Sprintf("native operation %q needs a %d byte buffer, had %d", e.Op, e.Needed, e.Size)
}
