package framing

import (
	"unicode/utf8"

	"github.com/sam0x17/lencode/errs"
	"github.com/sam0x17/lencode/iobuf"
)

// EncodeString writes s through the same flagged byte header as EncodeBytes.
func EncodeString(sink iobuf.Sink, s string) error {
	return EncodeBytes(sink, []byte(s))
}

// DecodeString reads a flagged byte payload and validates it as UTF-8.
// Invalid UTF-8 in the decompressed payload fails with InvalidData.
func DecodeString(src iobuf.Source, maxLen int) (string, error) {
	b, err := DecodeBytes(src, maxLen)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(b) {
		return "", errs.Invalid("framing: decoded string payload is not valid UTF-8")
	}

	return string(b), nil
}
