// Package iobuf defines the byte I/O capabilities every higher lencode
// layer is generic over: Sink (append-only byte writer) and Source
// (read-exact byte reader). Neither capability is seekable, and neither
// depends on a standard runtime: a no_std-style embedding can supply a
// fixed-capacity Sink and a slice-backed Source without ever touching
// package io.
package iobuf

import (
	"fmt"

	"github.com/sam0x17/lencode/errs"
)

// Sink accepts bytes, appending them to whatever it is backed by. A Sink
// that cannot hold the full write fails with errs.ErrWriterOutOfSpace;
// bytes already appended before the failure are not rewound.
type Sink interface {
	WriteAll(p []byte) error
}

// Source yields exactly the requested number of bytes or fails with
// errs.ErrReaderOutOfData. It never buffers across calls in a way visible
// to the caller: two ReadExact calls never observe overlapping bytes.
type Source interface {
	ReadExact(n int) ([]byte, error)
}

// SliceSink is a Sink backed by a growable in-memory byte slice. It never
// runs out of space; Bytes returns the accumulated output.
type SliceSink struct {
	buf []byte
}

// NewSliceSink creates a SliceSink with the given initial capacity hint.
func NewSliceSink(capacityHint int) *SliceSink {
	return &SliceSink{buf: make([]byte, 0, capacityHint)}
}

func (s *SliceSink) WriteAll(p []byte) error {
	s.buf = append(s.buf, p...)
	return nil
}

// Bytes returns the bytes written so far. The returned slice is owned by
// the SliceSink and must not be retained past the next WriteAll.
func (s *SliceSink) Bytes() []byte { return s.buf }

// Len reports the number of bytes written so far.
func (s *SliceSink) Len() int { return len(s.buf) }

// Reset clears the sink, retaining its backing array for reuse.
func (s *SliceSink) Reset() { s.buf = s.buf[:0] }

// FixedSink is a Sink backed by a caller-supplied fixed-capacity buffer.
// It fails with errs.ErrWriterOutOfSpace once that capacity is exhausted,
// exercising the bounded-memory no-runtime path the core must support.
type FixedSink struct {
	buf []byte
	n   int
}

// NewFixedSink wraps buf (its full length is the Sink's capacity; writes
// start at offset 0).
func NewFixedSink(buf []byte) *FixedSink {
	return &FixedSink{buf: buf}
}

func (s *FixedSink) WriteAll(p []byte) error {
	if len(p) > len(s.buf)-s.n {
		return fmt.Errorf("iobuf: need %d bytes, have %d: %w", len(p), len(s.buf)-s.n, errs.ErrWriterOutOfSpace)
	}

	copy(s.buf[s.n:], p)
	s.n += len(p)

	return nil
}

// Bytes returns the bytes written so far.
func (s *FixedSink) Bytes() []byte { return s.buf[:s.n] }

// SliceSource is a Source backed by an in-memory byte slice. ReadExact
// advances an internal cursor and never copies: the returned slice aliases
// the backing buffer.
type SliceSource struct {
	buf []byte
	pos int
}

// NewSliceSource creates a Source that reads from buf starting at offset 0.
func NewSliceSource(buf []byte) *SliceSource {
	return &SliceSource{buf: buf}
}

func (s *SliceSource) ReadExact(n int) ([]byte, error) {
	if n < 0 || n > len(s.buf)-s.pos {
		return nil, fmt.Errorf("iobuf: need %d bytes, have %d: %w", n, len(s.buf)-s.pos, errs.ErrReaderOutOfData)
	}

	out := s.buf[s.pos : s.pos+n]
	s.pos += n

	return out, nil
}

// Remaining reports how many unread bytes are left in the source.
func (s *SliceSource) Remaining() int { return len(s.buf) - s.pos }

// Pos reports the current read cursor, useful for diagnostics and for
// decoders that need to report byte offsets in InvalidData errors.
func (s *SliceSource) Pos() int { return s.pos }
