package lencode

import (
	"github.com/sam0x17/lencode/iobuf"
	"github.com/sam0x17/lencode/varint"
)

// Pair is one (key, value) entry of an ordered map, in wire traversal
// order.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// EncodeMap writes an ordered map: varint length N, then N (key,
// value) pairs in the order pairs is given. Go's built-in map has no
// defined iteration order, so callers supply the traversal order explicitly
// rather than this function accepting a map directly.
func EncodeMap[K, V any](sink iobuf.Sink, pairs []Pair[K, V], encodeKey func(iobuf.Sink, K) error, encodeVal func(iobuf.Sink, V) error) error {
	if err := varint.EncodeUvarint64(sink, uint64(len(pairs))); err != nil {
		return err
	}

	for _, p := range pairs {
		if err := encodeKey(sink, p.Key); err != nil {
			return err
		}

		if err := encodeVal(sink, p.Value); err != nil {
			return err
		}
	}

	return nil
}

// DecodeMap reads an ordered map's wire form into a Go map. The pair order
// is not preserved in the result; use DecodeMapPairs when wire order
// matters (e.g. round-trip tests). Pass WithMaxElems to refuse absurd
// declared lengths before any allocation.
func DecodeMap[K comparable, V any](src iobuf.Source, decodeKey func(iobuf.Source) (K, error), decodeVal func(iobuf.Source) (V, error), opts ...DecodeOption) (map[K]V, error) {
	cfg, err := buildDecodeConfig(opts)
	if err != nil {
		return nil, err
	}

	n, err := varint.DecodeUvarint64(src)
	if err != nil {
		return nil, err
	}

	if err := cfg.checkElems("map", n); err != nil {
		return nil, err
	}

	scratch, cleanup := getSlicePool[Pair[K, V]]().Get(int(n))
	defer cleanup()

	for i := range scratch {
		k, err := decodeKey(src)
		if err != nil {
			return nil, err
		}

		v, err := decodeVal(src)
		if err != nil {
			return nil, err
		}

		scratch[i] = Pair[K, V]{Key: k, Value: v}
	}

	out := make(map[K]V, n)
	for _, p := range scratch {
		out[p.Key] = p.Value
	}

	return out, nil
}

// DecodeMapPairs reads an ordered map's wire form preserving traversal
// order, for callers that need it (tests, or an ordered-map type layered on
// top of this package). Pass WithMaxElems to refuse absurd declared
// lengths before the result is sized to them.
func DecodeMapPairs[K, V any](src iobuf.Source, decodeKey func(iobuf.Source) (K, error), decodeVal func(iobuf.Source) (V, error), opts ...DecodeOption) ([]Pair[K, V], error) {
	cfg, err := buildDecodeConfig(opts)
	if err != nil {
		return nil, err
	}

	n, err := varint.DecodeUvarint64(src)
	if err != nil {
		return nil, err
	}

	if err := cfg.checkElems("map", n); err != nil {
		return nil, err
	}

	out := make([]Pair[K, V], n)
	for i := range out {
		k, err := decodeKey(src)
		if err != nil {
			return nil, err
		}

		v, err := decodeVal(src)
		if err != nil {
			return nil, err
		}

		out[i] = Pair[K, V]{Key: k, Value: v}
	}

	return out, nil
}
