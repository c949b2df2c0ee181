package compress

import "github.com/klauspost/compress/s2"

// S2Compressor is the fast-compression transport algorithm (a Snappy
// derivative). Like LZ4 it is transport-only: the core flagged-header
// framing never emits it.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data as an S2 block. Returns nil for empty input.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress reverses Compress. S2 blocks record their decompressed size
// up front, so no sizing loop is needed.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
