// Package endian fixes the byte order the pack layer writes, independent of
// the host.
//
// The wire format defines every multi-byte scalar in little-endian Pack
// form. Rather than copying memory raw and hoping the host agrees, the pack
// layer goes through an EndianEngine, which is explicit byte shuffling on
// every host: on a big-endian machine the engine swaps on the way in and
// out, on a little-endian machine it compiles down to the obvious stores.
//
// EndianEngine combines encoding/binary's ByteOrder and AppendByteOrder so
// callers can both read fixed-width fields out of a byte slice and append
// them to one without a scratch buffer in between.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine is the byte-order capability the pack layer writes through.
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness reports the host's native byte order by inspecting the
// in-memory layout of a known integer. The wire format never depends on the
// answer; it exists so tests can assert that Pack output is host-independent
// and so diagnostics can name the host order.
func CheckEndianness() binary.ByteOrder {
	// 256 stores its low byte first on a little-endian host.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host stores integers
// little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host stores integers big-endian.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// GetLittleEndianEngine returns the engine for the wire-mandated
// little-endian layout. This is the only engine the pack layer ever writes
// with.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine, for tests that need to
// exercise the byte-swap path explicitly. It is never the wire default.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
