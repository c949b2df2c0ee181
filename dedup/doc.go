// Package dedup implements the stream-scoped value deduplication protocol:
// an ordered, append-only side table that replaces repeated instances of a
// Pack-capable type with a small back-reference varint instead of emitting
// their full byte form every time.
//
// An Encoder is the per-operation table on the encode side: it maps a
// value's Pack bytes to a monotonically assigned ID. A Decoder is its
// mirror on the decode side: an ordered slice of reconstructed values
// indexed by the same IDs. Because decode walks the exact same structural
// order encode did, the two tables stay aligned without the ID count ever
// appearing on the wire.
//
// Both sides must be created fresh for one top-level Encode/Decode call and
// discarded afterward: reuse across operations is unsupported, and neither
// type is safe for concurrent use.
package dedup
