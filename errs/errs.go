// Package errs defines the flat, closed set of sentinel errors returned at
// the lencode API boundary.
//
// All failures are values. Callers should compare against these sentinels
// with errors.Is; wrapped context (offsets, byte counts) is added with
// fmt.Errorf("%w", ...) by the layer that detects the fault.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrWriterOutOfSpace is returned when a Sink refuses a write. Partial
	// output may already have been emitted to the sink.
	ErrWriterOutOfSpace = errors.New("lencode: writer out of space")

	// ErrReaderOutOfData is returned when a Source is exhausted before the
	// expected number of bytes arrived.
	ErrReaderOutOfData = errors.New("lencode: reader out of data")

	// ErrInvalidData is returned when the wire format itself is violated:
	// malformed varints, bad UTF-8, out-of-range option tags, unknown dedup
	// IDs, zstd frame errors, width overflow, or a missing required dedup
	// handle.
	ErrInvalidData = errors.New("lencode: invalid data")

	// ErrOther is an implementation-defined escape hatch for
	// environment-specific failures that don't fit the other kinds.
	ErrOther = errors.New("lencode: other error")
)

// Invalid wraps ErrInvalidData with additional context while preserving
// errors.Is(err, ErrInvalidData).
func Invalid(format string, args ...any) error {
	return wrap(ErrInvalidData, format, args...)
}

// Other wraps ErrOther with additional context while preserving
// errors.Is(err, ErrOther).
func Other(format string, args ...any) error {
	return wrap(ErrOther, format, args...)
}

func wrap(sentinel error, format string, args ...any) error {
	if len(args) == 0 {
		return &wrapped{sentinel: sentinel, msg: format}
	}

	return &wrapped{sentinel: sentinel, msg: fmt.Sprintf(format, args...)}
}

type wrapped struct {
	sentinel error
	msg      string
}

func (w *wrapped) Error() string { return w.msg }
func (w *wrapped) Unwrap() error { return w.sentinel }
