package lencode

import (
	"github.com/sam0x17/lencode/iobuf"
	"github.com/sam0x17/lencode/varint"
)

// EncodeSlice writes a variable-length sequence: varint length N,
// then N elements. This covers Go slices, and, at the caller's
// traversal-order choice, deques, linked lists, and binary heaps (whose
// wire form only preserves multiset contents, not internal layout).
func EncodeSlice[T any](sink iobuf.Sink, vals []T, encodeElem func(iobuf.Sink, T) error) error {
	if err := varint.EncodeUvarint64(sink, uint64(len(vals))); err != nil {
		return err
	}

	for _, v := range vals {
		if err := encodeElem(sink, v); err != nil {
			return err
		}
	}

	return nil
}

// DecodeSlice reads a varint length N followed by N elements into a
// freshly allocated slice. Pass WithMaxElems to refuse absurd declared
// lengths before the slice is sized to them.
func DecodeSlice[T any](src iobuf.Source, decodeElem func(iobuf.Source) (T, error), opts ...DecodeOption) ([]T, error) {
	cfg, err := buildDecodeConfig(opts)
	if err != nil {
		return nil, err
	}

	n, err := varint.DecodeUvarint64(src)
	if err != nil {
		return nil, err
	}

	if err := cfg.checkElems("sequence", n); err != nil {
		return nil, err
	}

	out := make([]T, n)
	for i := range out {
		v, err := decodeElem(src)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}
