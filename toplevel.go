package lencode

import (
	"github.com/sam0x17/lencode/dedup"
	"github.com/sam0x17/lencode/iobuf"
)

// Encodable is implemented by any type with a hand-written wire encoding:
// its EncodeTo composes calls into this package (and, for dedup-eligible
// fields, dedup.EncodeEligible) in a fixed field order. h is nil unless the
// caller went through EncodeExt; a type with no dedup-eligible fields can
// ignore it.
type Encodable interface {
	EncodeTo(sink iobuf.Sink, h *dedup.Encoder) error
}

// Decodable is the decode-side mirror of Encodable, implemented on a
// pointer receiver so DecodeFrom can populate the value in place.
type Decodable interface {
	DecodeFrom(src iobuf.Source, h *dedup.Decoder) error
}

// countingSink wraps a Sink to report the number of bytes written through
// it, independent of whatever internal accounting (if any) the underlying
// Sink keeps.
type countingSink struct {
	iobuf.Sink
	n int
}

func (c *countingSink) WriteAll(p []byte) error {
	if err := c.Sink.WriteAll(p); err != nil {
		return err
	}

	c.n += len(p)

	return nil
}

// Encode writes v to sink with no dedup handle: any dedup-eligible value
// reached during encoding fails, since EncodeEligible always requires a
// handle. Use EncodeExt for values containing dedup-eligible fields. Encode
// returns the number of bytes written to sink.
func Encode[T Encodable](v T, sink iobuf.Sink) (int, error) {
	return EncodeExt[T](v, sink, nil)
}

// EncodeExt writes v to sink, threading enc through as the dedup handle
// used by any dedup-eligible field v's EncodeTo reaches. enc may be nil if
// v has none. A fresh *dedup.Encoder scopes the dedup table to exactly this
// one call; reusing an *dedup.Encoder across calls extends that scope
// across them, which most callers should not do.
func EncodeExt[T Encodable](v T, sink iobuf.Sink, enc *dedup.Encoder) (int, error) {
	cs := &countingSink{Sink: sink}

	if err := v.EncodeTo(cs, enc); err != nil {
		return cs.n, err
	}

	return cs.n, nil
}

// Decode reads a T from src with no dedup handle: any dedup-eligible field
// reached during decoding fails, mirroring Encode. Use DecodeExt for types
// containing dedup-eligible fields.
func Decode[T any, PT interface {
	*T
	Decodable
}](src iobuf.Source) (T, error) {
	return DecodeExt[T, PT](src, nil)
}

// DecodeExt reads a T from src, threading dec through as the dedup handle.
// dec must be in the same state (same prior Append history) a matching
// EncodeExt call's enc was in, since back-reference IDs are only meaningful
// relative to that shared traversal order.
func DecodeExt[T any, PT interface {
	*T
	Decodable
}](src iobuf.Source, dec *dedup.Decoder) (T, error) {
	var v T

	pv := PT(&v)
	if err := pv.DecodeFrom(src, dec); err != nil {
		var zero T
		return zero, err
	}

	return v, nil
}
