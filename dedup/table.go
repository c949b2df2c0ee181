package dedup

import (
	"bytes"

	"github.com/sam0x17/lencode/internal/collision"
	"github.com/sam0x17/lencode/internal/hash"
)

type entry struct {
	pack []byte
	id   uint32
}

// Encoder is the per-operation dedup side table on the encode side: a
// mapping from a dedup-eligible value's Pack bytes to a small,
// monotonically-assigned ID. IDs start at 1; ID 0 is reserved to mean "new
// entry follows". Insertion is append-only; IDs never change once assigned.
//
// Encoder buckets entries by xxHash64 of their Pack bytes and always
// confirms a candidate hit with a full byte comparison, so an xxHash64
// collision can only cost an extra comparison, never corrupt a lookup.
//
// An Encoder must be created fresh for each top-level encode call and
// discarded afterward; it is not safe for concurrent use.
type Encoder struct {
	buckets map[uint64][]entry
	next    uint32
	stats   *collision.Tracker
}

// NewEncoder creates an empty dedup encoder table.
func NewEncoder() *Encoder {
	return &Encoder{
		buckets: make(map[uint64][]entry),
		next:    1,
		stats:   collision.NewTracker(),
	}
}

// Lookup reports the ID previously assigned to packBytes, if any.
func (e *Encoder) Lookup(packBytes []byte) (uint32, bool) {
	h := hash.Sum64(packBytes)
	for _, ent := range e.buckets[h] {
		if bytes.Equal(ent.pack, packBytes) {
			return ent.id, true
		}
	}

	return 0, false
}

// Insert assigns the next unused ID to packBytes and returns it. Callers
// must have already confirmed this is a miss via Lookup; Insert does not
// check again.
func (e *Encoder) Insert(packBytes []byte) uint32 {
	h := hash.Sum64(packBytes)
	bucket := e.buckets[h]
	e.stats.Observe(h, len(bucket))

	id := e.next
	e.next++

	cp := make([]byte, len(packBytes))
	copy(cp, packBytes)
	e.buckets[h] = append(bucket, entry{pack: cp, id: id})

	return id
}

// Len reports the number of distinct entries inserted so far.
func (e *Encoder) Len() int {
	return int(e.next - 1)
}

// CollisionStats returns diagnostics about xxHash64 bucket collisions
// observed while populating this table. These never affect correctness;
// see the collision package.
func (e *Encoder) CollisionStats() (collisions, buckets int) {
	return e.stats.Collisions(), e.stats.Buckets()
}
