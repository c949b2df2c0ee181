// Package compress provides the compression codecs used elsewhere in
// lencode: zstd for the core flagged byte/string framing, and zstd, S2, and
// LZ4 as selectable algorithms for the optional transport-level whole-stream
// wrapper.
//
// # Algorithms
//
//   - None: returns the input unchanged.
//   - Zstd: best compression ratio, moderate speed. The only algorithm the
//     wire format itself may emit (see the framing package).
//   - S2: faster than zstd with a lower ratio, useful for latency-sensitive
//     transport-level compression.
//   - LZ4: fastest decompression, useful when the transport's read path
//     dominates.
//
// All four satisfy Codec and are safe for concurrent use. The zstd encoders
// and decoders and the LZ4 block compressors are pooled internally to avoid
// warmup cost on the hot path; S2 and None keep no pooled state.
package compress
