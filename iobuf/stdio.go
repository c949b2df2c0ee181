package iobuf

import (
	"fmt"
	"io"

	"github.com/sam0x17/lencode/errs"
)

// WriterSink adapts an io.Writer to Sink, for callers that already have a
// standard-runtime writer (a file, a network connection, a bytes.Buffer).
// WriterSink and ReaderSource are the only parts of package iobuf that
// depend on package io.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink wraps w as a Sink.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) WriteAll(p []byte) error {
	n, err := s.w.Write(p)
	if err != nil {
		return fmt.Errorf("iobuf: underlying writer failed after %d of %d bytes: %w: %v", n, len(p), errs.ErrWriterOutOfSpace, err)
	}
	if n != len(p) {
		return fmt.Errorf("iobuf: short write, wrote %d of %d bytes: %w", n, len(p), errs.ErrWriterOutOfSpace)
	}

	return nil
}

// ReaderSource adapts an io.Reader to Source via io.ReadFull.
type ReaderSource struct {
	r io.Reader
}

// NewReaderSource wraps r as a Source.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r}
}

func (s *ReaderSource) ReadExact(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return nil, fmt.Errorf("iobuf: %w: %v", errs.ErrReaderOutOfData, err)
	}

	return buf, nil
}
