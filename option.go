package lencode

import (
	"github.com/sam0x17/lencode/errs"
	"github.com/sam0x17/lencode/iobuf"
	"github.com/sam0x17/lencode/varint"
)

// EncodeOptional writes the option framing: varint 0 if v is nil, else
// varint 1 followed by encodeElem(*v).
//
// Named Optional rather than Option to avoid colliding with the
// DecodeOption functional-options type used by the decode configuration
// surface (WithMaxBytesLen and friends).
func EncodeOptional[T any](sink iobuf.Sink, v *T, encodeElem func(iobuf.Sink, T) error) error {
	if v == nil {
		return varint.EncodeUvarint8(sink, 0)
	}

	if err := varint.EncodeUvarint8(sink, 1); err != nil {
		return err
	}

	return encodeElem(sink, *v)
}

// DecodeOptional reads the option framing. Any tag >= 2 is InvalidData.
func DecodeOptional[T any](src iobuf.Source, decodeElem func(iobuf.Source) (T, error)) (*T, error) {
	tag, err := varint.DecodeUvarint8(src)
	if err != nil {
		return nil, err
	}

	switch tag {
	case 0:
		return nil, nil
	case 1:
		v, err := decodeElem(src)
		if err != nil {
			return nil, err
		}

		return &v, nil
	default:
		return nil, errs.Invalid("lencode: option tag %d out of range", tag)
	}
}
