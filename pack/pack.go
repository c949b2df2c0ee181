// Package pack implements the canonical, fixed-width little-endian byte
// layout used as the collision-free identity for the dedup table and as
// the inline "new entry" payload whenever a dedup miss occurs.
//
// Pack is deliberately dumber than Encode: it never varint-compresses, never
// consults a dedup table, and never changes shape based on compression
// level. A type's Pack output is a pure function of its value, which is the
// property dedup's hash-and-compare lookup depends on.
package pack

import (
	"math"

	"github.com/sam0x17/lencode/endian"
	"github.com/sam0x17/lencode/errs"
	"github.com/sam0x17/lencode/iobuf"
)

// engine is the wire-mandated byte order for every Pack form. The core
// format is always little-endian regardless of host; big-endian hosts
// byte-swap explicitly in Put/append rather than via a raw memory copy.
var engine = endian.GetLittleEndianEngine()

// Packer is implemented by any type with a canonical fixed-width byte form.
// User records implement it by concatenating their fields' Pack calls in
// declared order.
type Packer interface {
	Pack(sink iobuf.Sink) error
}

// Unpacker reconstructs a value from its Pack form. It is implemented on a
// pointer receiver so that generic dedup decode can instantiate a zero
// value and fill it in place (see the PT interface{ *T; Unpacker } pattern
// used by the dedup package).
type Unpacker interface {
	UnpackFrom(src iobuf.Source) error
}

// PackUint8 writes a single byte.
func PackUint8(sink iobuf.Sink, v uint8) error {
	return sink.WriteAll([]byte{v})
}

// UnpackUint8 reads a single byte.
func UnpackUint8(src iobuf.Source) (uint8, error) {
	b, err := src.ReadExact(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// PackInt8 writes a single byte (two's complement).
func PackInt8(sink iobuf.Sink, v int8) error {
	return PackUint8(sink, uint8(v))
}

// UnpackInt8 reads a single byte as a two's complement int8.
func UnpackInt8(src iobuf.Source) (int8, error) {
	v, err := UnpackUint8(src)
	return int8(v), err
}

// PackBool writes 0x00 or 0x01.
func PackBool(sink iobuf.Sink, v bool) error {
	if v {
		return PackUint8(sink, 1)
	}

	return PackUint8(sink, 0)
}

// UnpackBool reads a bool byte. Any value other than 0 or 1 is InvalidData.
func UnpackBool(src iobuf.Source) (bool, error) {
	v, err := UnpackUint8(src)
	if err != nil {
		return false, err
	}

	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errs.Invalid("pack: bool byte %#x out of range", v)
	}
}

// PackUint16 writes v in the wire little-endian layout.
func PackUint16(sink iobuf.Sink, v uint16) error {
	return sink.WriteAll(engine.AppendUint16(make([]byte, 0, 2), v))
}

// UnpackUint16 reads a uint16 in the wire little-endian layout.
func UnpackUint16(src iobuf.Source) (uint16, error) {
	b, err := src.ReadExact(2)
	if err != nil {
		return 0, err
	}

	return engine.Uint16(b), nil
}

func PackInt16(sink iobuf.Sink, v int16) error { return PackUint16(sink, uint16(v)) }

func UnpackInt16(src iobuf.Source) (int16, error) {
	v, err := UnpackUint16(src)
	return int16(v), err
}

// PackUint32 writes v in the wire little-endian layout.
func PackUint32(sink iobuf.Sink, v uint32) error {
	return sink.WriteAll(engine.AppendUint32(make([]byte, 0, 4), v))
}

func UnpackUint32(src iobuf.Source) (uint32, error) {
	b, err := src.ReadExact(4)
	if err != nil {
		return 0, err
	}

	return engine.Uint32(b), nil
}

func PackInt32(sink iobuf.Sink, v int32) error { return PackUint32(sink, uint32(v)) }

func UnpackInt32(src iobuf.Source) (int32, error) {
	v, err := UnpackUint32(src)
	return int32(v), err
}

func PackFloat32(sink iobuf.Sink, v float32) error {
	return PackUint32(sink, math.Float32bits(v))
}

func UnpackFloat32(src iobuf.Source) (float32, error) {
	v, err := UnpackUint32(src)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}

// PackUint64 writes v in the wire little-endian layout.
func PackUint64(sink iobuf.Sink, v uint64) error {
	return sink.WriteAll(engine.AppendUint64(make([]byte, 0, 8), v))
}

func UnpackUint64(src iobuf.Source) (uint64, error) {
	b, err := src.ReadExact(8)
	if err != nil {
		return 0, err
	}

	return engine.Uint64(b), nil
}

func PackInt64(sink iobuf.Sink, v int64) error { return PackUint64(sink, uint64(v)) }

func UnpackInt64(src iobuf.Source) (int64, error) {
	v, err := UnpackUint64(src)
	return int64(v), err
}

func PackFloat64(sink iobuf.Sink, v float64) error {
	return PackUint64(sink, math.Float64bits(v))
}

func UnpackFloat64(src iobuf.Source) (float64, error) {
	v, err := UnpackUint64(src)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(v), nil
}

// PackBytes writes raw bytes with no header; callers needing a length
// prefix use the framing package instead. This exists for fixed-width Pack
// composition (e.g. a record field that is itself a fixed-size byte array).
func PackBytes(sink iobuf.Sink, p []byte) error {
	return sink.WriteAll(p)
}
