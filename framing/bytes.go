package framing

import (
	"github.com/sam0x17/lencode/compress"
	"github.com/sam0x17/lencode/errs"
	"github.com/sam0x17/lencode/iobuf"
	"github.com/sam0x17/lencode/varint"
)

// zstdCodec is the only compression algorithm the core wire format may
// emit. Its compression level is a compile-time constant inside the
// compress package and is never recorded on the wire: changing it changes
// output size, never correctness.
var zstdCodec = compress.NewZstdCompressor()

// EncodeBytes writes p as a flagged-header payload.
//
// It attempts a zstd compression of p and emits the compressed frame only
// when it is strictly smaller than p; a tie or a larger result falls back
// to raw bytes. The header is a single varint: (payload_len<<1)|flag.
func EncodeBytes(sink iobuf.Sink, p []byte) error {
	body := p
	flag := uint64(0)

	if compressed, err := zstdCodec.Compress(p); err == nil && len(compressed) < len(p) {
		body = compressed
		flag = 1
	}

	header := (uint64(len(body)) << 1) | flag
	if err := varint.EncodeUvarint64(sink, header); err != nil {
		return err
	}

	if len(body) == 0 {
		return nil
	}

	return sink.WriteAll(body)
}

// DecodeBytes reads a flagged-header payload and returns its logical bytes.
//
// maxLen, if positive, rejects a header whose payload_len exceeds it with
// InvalidData before any allocation or decompression is attempted; this is
// the "per-decoder configurable maximum" the core format requires to refuse
// absurd allocations up front. maxLen <= 0 means unbounded.
func DecodeBytes(src iobuf.Source, maxLen int) ([]byte, error) {
	header, err := varint.DecodeUvarint64(src)
	if err != nil {
		return nil, err
	}

	flag := header & 1
	length := header >> 1

	if maxLen > 0 && length > uint64(maxLen) {
		return nil, errs.Invalid("framing: payload length %d exceeds configured maximum %d", length, maxLen)
	}

	if length == 0 {
		return []byte{}, nil
	}

	body, err := src.ReadExact(int(length))
	if err != nil {
		return nil, err
	}

	if flag == 0 {
		out := make([]byte, len(body))
		copy(out, body)

		return out, nil
	}

	decompressed, err := zstdCodec.Decompress(body)
	if err != nil {
		return nil, errs.Invalid("framing: zstd frame error: %v", err)
	}

	return decompressed, nil
}
