package varint

import (
	"github.com/sam0x17/lencode/errs"
	"github.com/sam0x17/lencode/iobuf"
	"github.com/sam0x17/lencode/pack"
)

const uint128Bits = 128

// shr128 shifts the 128-bit value (hi, lo) right by n bits (0 <= n <= 128).
func shr128(hi, lo uint64, n uint) (uint64, uint64) {
	switch {
	case n == 0:
		return hi, lo
	case n < 64:
		return hi >> n, (lo >> n) | (hi << (64 - n))
	case n == 64:
		return 0, hi
	case n < 128:
		return 0, hi >> (n - 64)
	default:
		return 0, 0
	}
}

// shl128 shifts v (a 7-bit group value) left by shift bits, producing the
// high/low words of the resulting 128-bit contribution.
func shl128(v uint64, shift uint) (hi, lo uint64) {
	switch {
	case shift == 0:
		return 0, v
	case shift < 64:
		return v >> (64 - shift), v << shift
	case shift == 64:
		return v, 0
	case shift < 128:
		return v << (shift - 64), 0
	default:
		return 0, 0
	}
}

// EncodeUvarint128 writes v as a base-128 varint, up to 19 bytes.
func EncodeUvarint128(sink iobuf.Sink, v pack.Uint128) error {
	hi, lo := v.Hi, v.Lo
	var buf [19]byte
	n := 0

	for {
		b := byte(lo & 0x7f)
		hi, lo = shr128(hi, lo, 7)
		if hi != 0 || lo != 0 {
			b |= 0x80
		}
		buf[n] = b
		n++
		if hi == 0 && lo == 0 {
			break
		}
	}

	return sink.WriteAll(buf[:n])
}

// DecodeUvarint128 reads a base-128 varint into a Uint128, failing with
// InvalidData if it overflows 128 bits or runs past 19 bytes.
func DecodeUvarint128(src iobuf.Source) (pack.Uint128, error) {
	maxBytes := (uint128Bits + 6) / 7

	var hi, lo uint64
	shift := 0

	for i := 0; ; i++ {
		if i >= maxBytes {
			return pack.Uint128{}, errs.Invalid("varint: more than %d bytes for a 128-bit value", maxBytes)
		}

		b, err := src.ReadExact(1)
		if err != nil {
			return pack.Uint128{}, err
		}

		val := uint64(b[0] & 0x7f)
		usable := uint128Bits - shift

		switch {
		case usable <= 0:
			if val != 0 {
				return pack.Uint128{}, errs.Invalid("varint: value overflows 128-bit target")
			}
		case usable < 7:
			if val>>uint(usable) != 0 {
				return pack.Uint128{}, errs.Invalid("varint: value overflows 128-bit target")
			}
		}

		shh, shl := shl128(val, uint(shift))
		hi |= shh
		lo |= shl
		shift += 7

		if b[0]&0x80 == 0 {
			break
		}
	}

	return pack.Uint128{Hi: hi, Lo: lo}, nil
}

// EncodeSvarint128 zigzags v, then writes it as an unsigned 128-bit varint.
func EncodeSvarint128(sink iobuf.Sink, v pack.Int128) error {
	// zz(n) = (n << 1) ^ (n >> 127), arithmetic shift, computed over the
	// two-word representation.
	signMask := uint64(0)
	if v.Hi < 0 {
		signMask = ^uint64(0)
	}

	shiftedHi := (uint64(v.Hi) << 1) | (v.Lo >> 63)
	shiftedLo := v.Lo << 1

	u := pack.Uint128{Hi: shiftedHi ^ signMask, Lo: shiftedLo ^ signMask}

	return EncodeUvarint128(sink, u)
}

// DecodeSvarint128 reverses zigzag after decoding an unsigned 128-bit
// varint.
func DecodeSvarint128(src iobuf.Source) (pack.Int128, error) {
	u, err := DecodeUvarint128(src)
	if err != nil {
		return pack.Int128{}, err
	}

	signMask := uint64(0)
	if u.Lo&1 != 0 {
		signMask = ^uint64(0)
	}

	hi, lo := shr128(u.Hi, u.Lo, 1)
	hi ^= signMask
	lo ^= signMask

	return pack.Int128{Hi: int64(hi), Lo: lo}, nil
}
