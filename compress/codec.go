package compress

import "fmt"

// Compressor compresses a byte payload.
//
// Implementations own their scratch buffers; the returned slice is newly
// allocated and safe for the caller to retain, except for NoOpCompressor,
// which returns the input slice itself. The input slice is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// Decompress validates the input format and returns an error if the data
// is corrupted or was produced by a different algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression for a single algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// Algorithm identifies one of the codecs this package provides. It is used
// by the transport package to select whole-stream compression; the core
// flagged-header framing hardcodes zstd and never varies by Algorithm.
type Algorithm uint8

const (
	AlgorithmNone Algorithm = iota
	AlgorithmZstd
	AlgorithmS2
	AlgorithmLZ4
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmNone:
		return "None"
	case AlgorithmZstd:
		return "Zstd"
	case AlgorithmS2:
		return "S2"
	case AlgorithmLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// CompressionStats summarizes one compression operation for callers that
// want to log or expose compression effectiveness.
type CompressionStats struct {
	Algorithm      Algorithm
	OriginalSize   int64
	CompressedSize int64
}

// CompressionRatio returns CompressedSize / OriginalSize. Values below 1.0
// indicate successful compression; 0.0 if OriginalSize is zero.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage (0-100, negative on
// overhead).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

var builtinCodecs = map[Algorithm]Codec{
	AlgorithmNone: NewNoOpCompressor(),
	AlgorithmZstd: NewZstdCompressor(),
	AlgorithmS2:   NewS2Compressor(),
	AlgorithmLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the given Algorithm.
func GetCodec(algorithm Algorithm) (Codec, error) {
	if codec, ok := builtinCodecs[algorithm]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("compress: unsupported algorithm %s", algorithm)
}
