// Package framing implements lencode's flagged byte/string header: a single
// varint carrying both a payload length and a one-bit compression flag,
// followed by either the literal payload or a zstd frame that decompresses
// to it.
//
// Every contiguous byte payload on the wire (raw byte slices and UTF-8
// strings alike) goes through this framing. Encode always tries zstd first
// and falls back to raw bytes whenever compression does not shrink the
// payload, so the decision is made per value with no stream-level flag.
package framing
