package lencode

import (
	"github.com/sam0x17/lencode/iobuf"
	"github.com/sam0x17/lencode/pack"
	"github.com/sam0x17/lencode/varint"
)

// Scalar Encode/Decode wrappers. Integers use the varint layer:
// small values cost fewer bytes, and width-unification means decoding into
// a wider type than was encoded always succeeds. Bools and floats have no
// varint-friendly representation, so their Encode form is their Pack form;
// a fixed-width layout is already minimal for them.

func EncodeUint8(sink iobuf.Sink, v uint8) error   { return varint.EncodeUvarint8(sink, v) }
func DecodeUint8(src iobuf.Source) (uint8, error)  { return varint.DecodeUvarint8(src) }
func EncodeInt8(sink iobuf.Sink, v int8) error     { return varint.EncodeSvarint8(sink, v) }
func DecodeInt8(src iobuf.Source) (int8, error)    { return varint.DecodeSvarint8(src) }
func EncodeUint16(sink iobuf.Sink, v uint16) error { return varint.EncodeUvarint16(sink, v) }
func DecodeUint16(src iobuf.Source) (uint16, error) {
	return varint.DecodeUvarint16(src)
}
func EncodeInt16(sink iobuf.Sink, v int16) error  { return varint.EncodeSvarint16(sink, v) }
func DecodeInt16(src iobuf.Source) (int16, error) { return varint.DecodeSvarint16(src) }
func EncodeUint32(sink iobuf.Sink, v uint32) error {
	return varint.EncodeUvarint32(sink, v)
}
func DecodeUint32(src iobuf.Source) (uint32, error) {
	return varint.DecodeUvarint32(src)
}
func EncodeInt32(sink iobuf.Sink, v int32) error  { return varint.EncodeSvarint32(sink, v) }
func DecodeInt32(src iobuf.Source) (int32, error) { return varint.DecodeSvarint32(src) }
func EncodeUint64(sink iobuf.Sink, v uint64) error {
	return varint.EncodeUvarint64(sink, v)
}
func DecodeUint64(src iobuf.Source) (uint64, error) {
	return varint.DecodeUvarint64(src)
}
func EncodeInt64(sink iobuf.Sink, v int64) error  { return varint.EncodeSvarint64(sink, v) }
func DecodeInt64(src iobuf.Source) (int64, error) { return varint.DecodeSvarint64(src) }

// EncodeUint128 writes v as an unsigned base-128 varint up to 19 bytes.
func EncodeUint128(sink iobuf.Sink, v pack.Uint128) error {
	return varint.EncodeUvarint128(sink, v)
}

func DecodeUint128(src iobuf.Source) (pack.Uint128, error) {
	return varint.DecodeUvarint128(src)
}

// EncodeInt128 zigzags v, then writes it as an unsigned 128-bit varint.
func EncodeInt128(sink iobuf.Sink, v pack.Int128) error {
	return varint.EncodeSvarint128(sink, v)
}

func DecodeInt128(src iobuf.Source) (pack.Int128, error) {
	return varint.DecodeSvarint128(src)
}

func EncodeBool(sink iobuf.Sink, v bool) error  { return pack.PackBool(sink, v) }
func DecodeBool(src iobuf.Source) (bool, error) { return pack.UnpackBool(src) }

func EncodeFloat32(sink iobuf.Sink, v float32) error { return pack.PackFloat32(sink, v) }
func DecodeFloat32(src iobuf.Source) (float32, error) {
	return pack.UnpackFloat32(src)
}
func EncodeFloat64(sink iobuf.Sink, v float64) error { return pack.PackFloat64(sink, v) }
func DecodeFloat64(src iobuf.Source) (float64, error) {
	return pack.UnpackFloat64(src)
}
