package iobuf

import "github.com/sam0x17/lencode/internal/pool"

// PooledSink is a Sink backed by a pool.ByteBuffer drawn from the package's
// value-buffer pool. Callers can pass it to Encode/EncodeExt to get a
// ready-to-grow buffer without a fresh allocation on every call, and Release
// returns it for reuse.
type PooledSink struct {
	bb *pool.ByteBuffer
}

// NewPooledSink draws a ByteBuffer from the default pool.
func NewPooledSink() *PooledSink {
	return &PooledSink{bb: pool.GetValueBuffer()}
}

func (s *PooledSink) WriteAll(p []byte) error {
	s.bb.MustWrite(p)
	return nil
}

// Bytes returns the bytes written so far. Valid until Release is called.
func (s *PooledSink) Bytes() []byte { return s.bb.Bytes() }

// Len reports the number of bytes written so far.
func (s *PooledSink) Len() int { return s.bb.Len() }

// Release returns the underlying buffer to the pool. The Sink must not be
// used afterward.
func (s *PooledSink) Release() {
	pool.PutValueBuffer(s.bb)
	s.bb = nil
}
