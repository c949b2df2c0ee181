package lencode

import (
	"github.com/sam0x17/lencode/iobuf"
	"github.com/sam0x17/lencode/varint"
)

// EncodeSet writes a set the same way as a sequence: varint length N, then
// N elements in the caller's supplied iteration order. The wire form
// preserves only set membership, not the source collection's internal
// layout.
func EncodeSet[T comparable](sink iobuf.Sink, vals []T, encodeElem func(iobuf.Sink, T) error) error {
	return EncodeSlice(sink, vals, encodeElem)
}

// DecodeSet reads a varint length N followed by N elements and reconstructs
// the set by successive insertion: sets and binary heaps decode to equal
// content but not necessarily equal internal layout. The N
// decoded elements are held in a pooled scratch slice that is released
// once the map is built. Pass WithMaxElems to refuse absurd declared
// lengths before any allocation.
func DecodeSet[T comparable](src iobuf.Source, decodeElem func(iobuf.Source) (T, error), opts ...DecodeOption) (map[T]struct{}, error) {
	cfg, err := buildDecodeConfig(opts)
	if err != nil {
		return nil, err
	}

	n, err := varint.DecodeUvarint64(src)
	if err != nil {
		return nil, err
	}

	if err := cfg.checkElems("set", n); err != nil {
		return nil, err
	}

	scratch, cleanup := getSlicePool[T]().Get(int(n))
	defer cleanup()

	for i := range scratch {
		v, err := decodeElem(src)
		if err != nil {
			return nil, err
		}

		scratch[i] = v
	}

	out := make(map[T]struct{}, n)
	for _, v := range scratch {
		out[v] = struct{}{}
	}

	return out, nil
}
