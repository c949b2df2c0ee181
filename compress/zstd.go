package compress

// ZstdCompressor implements zstd compression. It backs the core flagged
// byte/string header (framing package) and is also available as a transport
// algorithm. Compress and Decompress are defined in the build-tagged
// zstd_pure.go / zstd_cgo.go files.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
