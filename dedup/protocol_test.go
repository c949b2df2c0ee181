package dedup

import (
	"testing"

	"github.com/sam0x17/lencode/errs"
	"github.com/sam0x17/lencode/iobuf"
	"github.com/sam0x17/lencode/pack"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeEligible_RoundTrip(t *testing.T) {
	a := pack.NewUint128(1, 2)
	b := pack.NewUint128(3, 4)

	sink := iobuf.NewSliceSink(64)
	enc := NewEncoder()

	require.NoError(t, EncodeEligible(sink, enc, a))
	require.NoError(t, EncodeEligible(sink, enc, b))
	require.NoError(t, EncodeEligible(sink, enc, a))

	src := iobuf.NewSliceSource(sink.Bytes())
	dec := NewDecoder()

	got1, err := DecodeEligible[pack.Uint128](src, dec)
	require.NoError(t, err)
	require.Equal(t, a, got1)

	got2, err := DecodeEligible[pack.Uint128](src, dec)
	require.NoError(t, err)
	require.Equal(t, b, got2)

	got3, err := DecodeEligible[pack.Uint128](src, dec)
	require.NoError(t, err)
	require.Equal(t, a, got3)
}

// TestDedup_RepeatedValuesBackReference: vals = [a, b, a, a, b] encodes
// exactly two inline Pack forms (for the first a and first b) and three
// back-reference varints, with IDs a->1, b->2.
func TestDedup_RepeatedValuesBackReference(t *testing.T) {
	a := pack.NewUint128(0x1111, 0x2222)
	b := pack.NewUint128(0x3333, 0x4444)
	vals := []pack.Uint128{a, b, a, a, b}

	sink := iobuf.NewSliceSink(256)
	enc := NewEncoder()

	for _, v := range vals {
		require.NoError(t, EncodeEligible(sink, enc, v))
	}

	require.Equal(t, 2, enc.Len())

	src := iobuf.NewSliceSource(sink.Bytes())
	dec := NewDecoder()

	for i, want := range vals {
		got, err := DecodeEligible[pack.Uint128](src, dec)
		require.NoErrorf(t, err, "value %d", i)
		require.Equalf(t, want, got, "value %d", i)
	}

	require.Equal(t, 2, dec.Len())
	require.Equal(t, 0, src.Remaining())
}

// TestDedup_ExactWireSize pins the byte layout for [A, B, A] of a
// 16-byte-pack type: varint(0) + Pack(A), varint(0) + Pack(B), varint(1).
func TestDedup_ExactWireSize(t *testing.T) {
	a := pack.NewUint128(9, 9)
	b := pack.NewUint128(8, 8)

	sink := iobuf.NewSliceSink(64)
	enc := NewEncoder()

	require.NoError(t, EncodeEligible(sink, enc, a))
	require.NoError(t, EncodeEligible(sink, enc, b))
	require.NoError(t, EncodeEligible(sink, enc, a))

	require.Equal(t, 17+17+1, sink.Len())
	require.Equal(t, byte(0x00), sink.Bytes()[0])
	require.Equal(t, byte(0x00), sink.Bytes()[17])
	require.Equal(t, byte(0x01), sink.Bytes()[34])
}

func TestEncodeWithoutDedup_ProducesIndependentInlineForms(t *testing.T) {
	a := pack.NewUint128(1, 2)
	vals := []pack.Uint128{a, a, a}

	// Without a shared Encoder, every value Packs inline: three 16-byte
	// forms, no back-references.
	sink := iobuf.NewSliceSink(64)
	for _, v := range vals {
		require.NoError(t, v.Pack(sink))
	}
	require.Equal(t, 48, sink.Len())
}

func TestEncodeEligible_NilHandleFails(t *testing.T) {
	sink := iobuf.NewSliceSink(16)
	err := EncodeEligible[pack.Uint128](sink, nil, pack.NewUint128(1, 2))
	require.ErrorIs(t, err, errs.ErrInvalidData)
}

func TestDecodeEligible_NilHandleFails(t *testing.T) {
	src := iobuf.NewSliceSource([]byte{0x00})
	_, err := DecodeEligible[pack.Uint128](src, nil)
	require.ErrorIs(t, err, errs.ErrInvalidData)
}

func TestDecodeEligible_UnknownBackReferenceFails(t *testing.T) {
	sink := iobuf.NewSliceSink(8)
	err := EncodeEligible(sink, NewEncoder(), pack.NewUint128(1, 1)) // establishes nothing useful, just id 1
	require.NoError(t, err)

	// Forge a stream that references an ID never assigned on a fresh table.
	forged := iobuf.NewSliceSink(8)
	require.NoError(t, forgeBackRef(forged, 5))

	dec := NewDecoder()
	_, err = DecodeEligible[pack.Uint128](iobuf.NewSliceSource(forged.Bytes()), dec)
	require.ErrorIs(t, err, errs.ErrInvalidData)
}

func forgeBackRef(sink iobuf.Sink, id uint64) error {
	// varint(id), id >= 1 so this is always a back-reference, never miss.
	for {
		b := byte(id & 0x7f)
		id >>= 7
		if id != 0 {
			b |= 0x80
		}
		if err := sink.WriteAll([]byte{b}); err != nil {
			return err
		}
		if id == 0 {
			return nil
		}
	}
}

func TestEncoder_CollisionStatsNeverCorruptLookup(t *testing.T) {
	enc := NewEncoder()
	sink := iobuf.NewSliceSink(64)

	a := pack.NewUint128(1, 1)
	b := pack.NewUint128(2, 2)

	require.NoError(t, EncodeEligible(sink, enc, a))
	require.NoError(t, EncodeEligible(sink, enc, b))
	require.NoError(t, EncodeEligible(sink, enc, a))

	collisions, buckets := enc.CollisionStats()
	require.GreaterOrEqual(t, buckets, 1)
	require.GreaterOrEqual(t, collisions, 0)
	require.Equal(t, 2, enc.Len())
}
