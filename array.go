package lencode

import "github.com/sam0x17/lencode/iobuf"

// EncodeArray writes a fixed-size array: elements concatenated with no
// length prefix, since the length is part of the type rather than
// the wire form. The caller is responsible for supplying exactly N
// elements; a generic array type of compile-time-fixed length isn't
// expressible over an arbitrary N in current Go, so fixed arrays are
// represented here as ordinary slices whose length both sides already
// agree on out of band.
func EncodeArray[T any](sink iobuf.Sink, vals []T, encodeElem func(iobuf.Sink, T) error) error {
	for _, v := range vals {
		if err := encodeElem(sink, v); err != nil {
			return err
		}
	}

	return nil
}

// DecodeArray reads exactly n elements with no length prefix.
func DecodeArray[T any](src iobuf.Source, n int, decodeElem func(iobuf.Source) (T, error)) ([]T, error) {
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
