// Package varint implements the base-128 variable-length integer codec:
// unsigned varints directly, and signed varints via zigzag. The core byte
// loop is width-generic (driven by an explicit bit-width parameter); the
// exported per-width functions are thin typed wrappers so callers never
// juggle raw uint64 carriers for narrower types.
package varint

import (
	"github.com/sam0x17/lencode/errs"
	"github.com/sam0x17/lencode/iobuf"
)

// encodeUnsigned writes v as a base-128 varint: 7 payload bits per byte,
// LSB-first, MSB of each byte set on every non-final byte. No width mask is
// applied; callers only ever pass values their own type guarantees fit.
func encodeUnsigned(sink iobuf.Sink, v uint64) error {
	var buf [10]byte
	n := 0

	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		buf[n] = b
		n++
		if v == 0 {
			break
		}
	}

	return sink.WriteAll(buf[:n])
}

// decodeUnsigned reads a base-128 varint and validates it against width
// bits: at most ceil(width/7) bytes may be consumed, and no bit at position
// >= width may be set in the accumulated value.
func decodeUnsigned(src iobuf.Source, width int) (uint64, error) {
	maxBytes := (width + 6) / 7

	var result uint64
	shift := 0

	for i := 0; ; i++ {
		if i >= maxBytes {
			return 0, errs.Invalid("varint: more than %d bytes for a %d-bit value", maxBytes, width)
		}

		b, err := src.ReadExact(1)
		if err != nil {
			return 0, err
		}

		val := uint64(b[0] & 0x7f)
		usable := width - shift

		switch {
		case usable <= 0:
			if val != 0 {
				return 0, errs.Invalid("varint: value overflows %d-bit target", width)
			}
		case usable < 7:
			if val>>uint(usable) != 0 {
				return 0, errs.Invalid("varint: value overflows %d-bit target", width)
			}
			result |= val << uint(shift)
		default:
			result |= val << uint(shift)
		}

		shift += 7

		if b[0]&0x80 == 0 {
			break
		}
	}

	if width < 64 && result>>uint(width) != 0 {
		return 0, errs.Invalid("varint: value overflows %d-bit target", width)
	}

	return result, nil
}

// EncodeUvarint64 writes v as an unsigned varint with no width ceiling
// (used directly by 64-bit fields and as the carrier for all narrower
// unsigned wrappers below).
func EncodeUvarint64(sink iobuf.Sink, v uint64) error { return encodeUnsigned(sink, v) }

// DecodeUvarint64 reads an unsigned varint into a uint64.
func DecodeUvarint64(src iobuf.Source) (uint64, error) { return decodeUnsigned(src, 64) }

func EncodeUvarint8(sink iobuf.Sink, v uint8) error { return encodeUnsigned(sink, uint64(v)) }

func DecodeUvarint8(src iobuf.Source) (uint8, error) {
	v, err := decodeUnsigned(src, 8)
	return uint8(v), err
}

func EncodeUvarint16(sink iobuf.Sink, v uint16) error { return encodeUnsigned(sink, uint64(v)) }

func DecodeUvarint16(src iobuf.Source) (uint16, error) {
	v, err := decodeUnsigned(src, 16)
	return uint16(v), err
}

func EncodeUvarint32(sink iobuf.Sink, v uint32) error { return encodeUnsigned(sink, uint64(v)) }

func DecodeUvarint32(src iobuf.Source) (uint32, error) {
	v, err := decodeUnsigned(src, 32)
	return uint32(v), err
}

// zigzagEncode64 maps a signed 64-bit integer to unsigned via
// zz(n) = (n << 1) ^ (n >> 63), with the right shift arithmetic.
func zigzagEncode64(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

func zigzagDecode64(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

func EncodeSvarint64(sink iobuf.Sink, v int64) error {
	return encodeUnsigned(sink, zigzagEncode64(v))
}

func DecodeSvarint64(src iobuf.Source) (int64, error) {
	u, err := decodeUnsigned(src, 64)
	if err != nil {
		return 0, err
	}

	return zigzagDecode64(u), nil
}

func EncodeSvarint8(sink iobuf.Sink, v int8) error {
	n := int8(v)
	u := uint8((n << 1) ^ (n >> 7))
	return encodeUnsigned(sink, uint64(u))
}

func DecodeSvarint8(src iobuf.Source) (int8, error) {
	u, err := decodeUnsigned(src, 8)
	if err != nil {
		return 0, err
	}

	return int8(u>>1) ^ -int8(u&1), nil
}

func EncodeSvarint16(sink iobuf.Sink, v int16) error {
	n := v
	u := uint16((n << 1) ^ (n >> 15))
	return encodeUnsigned(sink, uint64(u))
}

func DecodeSvarint16(src iobuf.Source) (int16, error) {
	u, err := decodeUnsigned(src, 16)
	if err != nil {
		return 0, err
	}

	return int16(u>>1) ^ -int16(u&1), nil
}

func EncodeSvarint32(sink iobuf.Sink, v int32) error {
	n := v
	u := uint32((n << 1) ^ (n >> 31))
	return encodeUnsigned(sink, uint64(u))
}

func DecodeSvarint32(src iobuf.Source) (int32, error) {
	u, err := decodeUnsigned(src, 32)
	if err != nil {
		return 0, err
	}

	return int32(u>>1) ^ -int32(u&1), nil
}
