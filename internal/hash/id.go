// Package hash provides the fast, non-cryptographic hash used to bucket
// dedup-table lookups by Pack identity.
package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 of a Pack byte string.
//
// This is a bucketing hash only: the dedup table always verifies a bucket
// hit with a full byte comparison of the stored Pack bytes before treating
// it as a match, so an xxHash64 collision cannot corrupt the table; it can
// only cost an extra comparison.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Sum64String computes the xxHash64 of a string without an intermediate
// byte-slice allocation.
func Sum64String(data string) uint64 {
	return xxhash.Sum64String(data)
}
