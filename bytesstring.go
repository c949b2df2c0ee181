package lencode

import (
	"github.com/sam0x17/lencode/framing"
	"github.com/sam0x17/lencode/iobuf"
)

// EncodeBytes writes p through the flagged byte header, compressing
// with zstd whenever that is strictly smaller than the raw payload.
func EncodeBytes(sink iobuf.Sink, p []byte) error {
	return framing.EncodeBytes(sink, p)
}

// DecodeBytes reads a flagged byte payload. By default the declared length
// is unbounded; pass WithMaxBytesLen to refuse absurd allocations when
// decoding untrusted input.
func DecodeBytes(src iobuf.Source, opts ...DecodeOption) ([]byte, error) {
	cfg, err := buildDecodeConfig(opts)
	if err != nil {
		return nil, err
	}

	return framing.DecodeBytes(src, cfg.maxBytesLen)
}

// EncodeString writes s through the flagged byte header.
func EncodeString(sink iobuf.Sink, s string) error {
	return framing.EncodeString(sink, s)
}

// DecodeString reads a flagged byte payload and validates it as UTF-8.
func DecodeString(src iobuf.Source, opts ...DecodeOption) (string, error) {
	cfg, err := buildDecodeConfig(opts)
	if err != nil {
		return "", err
	}

	return framing.DecodeString(src, cfg.maxBytesLen)
}
