package dedup

import (
	"github.com/sam0x17/lencode/errs"
	"github.com/sam0x17/lencode/internal/pool"
	"github.com/sam0x17/lencode/iobuf"
	"github.com/sam0x17/lencode/pack"
	"github.com/sam0x17/lencode/varint"
)

// scratchSink adapts a pool.ByteBuffer to iobuf.Sink for the one-value-at-a-
// time Pack scratch space EncodeEligible needs to compute a candidate's
// Pack bytes before it knows whether the table already holds them.
type scratchSink struct{ bb *pool.ByteBuffer }

func (s scratchSink) WriteAll(p []byte) error {
	s.bb.MustWrite(p)
	return nil
}

// EncodeEligible implements the dedup protocol for a single
// dedup-eligible, Pack-capable value: a table hit emits a back-reference
// varint; a miss assigns the next ID, emits varint(0) followed by the
// value's full Pack bytes, and records the entry so later equal values hit.
//
// enc == nil fails with InvalidData; this is also how a type that requires
// dedup unconditionally (no in-place wire form) rejects being encoded
// without a handle: it always routes through EncodeEligible.
func EncodeEligible[T pack.Packer](sink iobuf.Sink, enc *Encoder, v T) error {
	if enc == nil {
		return errs.Invalid("dedup: encode handle required for this type")
	}

	scratch := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(scratch)

	if err := v.Pack(scratchSink{scratch}); err != nil {
		return err
	}

	packBytes := scratch.Bytes()

	if id, ok := enc.Lookup(packBytes); ok {
		return varint.EncodeUvarint64(sink, uint64(id))
	}

	enc.Insert(packBytes)

	if err := varint.EncodeUvarint64(sink, 0); err != nil {
		return err
	}

	return sink.WriteAll(packBytes)
}

// DecodeEligible is the decode-side mirror of EncodeEligible. PT must be a
// pointer to T implementing pack.Unpacker, mirroring the pattern the pack
// package itself uses to reconstruct a value in place.
//
// dec == nil fails with InvalidData, matching EncodeEligible.
func DecodeEligible[T any, PT interface {
	*T
	pack.Unpacker
}](src iobuf.Source, dec *Decoder) (T, error) {
	var zero T

	if dec == nil {
		return zero, errs.Invalid("dedup: decode handle required for this type")
	}

	id, err := varint.DecodeUvarint64(src)
	if err != nil {
		return zero, err
	}

	if id == 0 {
		var v T

		pv := PT(&v)
		if err := pv.UnpackFrom(src); err != nil {
			return zero, err
		}

		dec.Append(v)

		return v, nil
	}

	stored, ok := dec.Get(uint32(id))
	if !ok {
		return zero, errs.Invalid("dedup: unknown back-reference id %d", id)
	}

	v, ok := stored.(T)
	if !ok {
		return zero, errs.Invalid("dedup: back-reference id %d resolved to an unexpected type", id)
	}

	return v, nil
}
