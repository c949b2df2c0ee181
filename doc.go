// Package lencode is a compact binary serialization codec: it maps typed
// in-memory values to self-describing, positional byte streams and back,
// with two levers beyond a plain varint codec: opportunistic per-value
// compression of byte-like payloads (see the framing package) and
// stream-scoped value deduplication that replaces repeated instances of a
// dedup-eligible type with a small back-reference (see the dedup package).
//
// # Layers
//
// Five layers build on each other, leaves first:
//
//   - iobuf: the Sink/Source byte I/O capabilities every higher layer is
//     generic over.
//   - pack: fixed-width, endian-stable byte layout for scalars, the
//     canonical identity dedup hashes and compares against.
//   - varint: the length-prefixed base-128 integer codec, unsigned and
//     signed (via zigzag), widths 8..128 bits.
//   - framing: the flagged byte/string header, with optional zstd.
//   - this package: scalar Encode/Decode wrappers, aggregate composition
//     (option, fixed array, sequence, set, map, tuple), and the top-level
//     Encode/Decode/EncodeExt/DecodeExt surface that threads an optional
//     dedup handle through all of it.
//
// # Basic usage
//
// A user type implements Encodable and Decodable by hand (or via a
// generated glue layer outside this module's scope), composing its fields'
// own Encode/Decode calls in declared order:
//
//	type Point struct{ X, Y int32 }
//
//	func (p Point) EncodeTo(sink iobuf.Sink, h *dedup.Encoder) error {
//		if err := lencode.EncodeInt32(sink, p.X); err != nil {
//			return err
//		}
//		return lencode.EncodeInt32(sink, p.Y)
//	}
//
//	func (p *Point) DecodeFrom(src iobuf.Source, h *dedup.Decoder) error {
//		x, err := lencode.DecodeInt32(src)
//		if err != nil {
//			return err
//		}
//		y, err := lencode.DecodeInt32(src)
//		if err != nil {
//			return err
//		}
//		p.X, p.Y = x, y
//		return nil
//	}
//
//	sink := iobuf.NewSliceSink(64)
//	n, err := lencode.Encode[Point](Point{X: 1, Y: 2}, sink)
//
//	src := iobuf.NewSliceSource(sink.Bytes())
//	got, err := lencode.Decode[Point](src)
//
// Nested dedup-eligible values additionally implement pack.Packer and route
// through dedup.EncodeEligible/DecodeEligible, passed the handle EncodeTo
// and DecodeFrom received.
package lencode
