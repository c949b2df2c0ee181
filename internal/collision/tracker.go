// Package collision tracks xxHash64 bucket collisions inside a dedup table.
//
// A lencode dedup table buckets entries by the xxHash64 of their Pack bytes
// and always confirms a hit with a full byte comparison (see the dedup
// package), so a bucket collision can never corrupt a lookup; it only costs
// an extra comparison. Tracker exists purely so callers can observe how
// often that happens, which is useful when choosing whether a type's Pack
// form is distinctive enough to dedup efficiently.
package collision

// Tracker counts xxHash64 bucket collisions observed by a dedup table: cases
// where two distinct Pack byte strings hashed to the same bucket. It never
// affects correctness, only diagnostics.
type Tracker struct {
	buckets   map[uint64]int // hash -> number of distinct Pack strings seen in that bucket
	collision int
}

// NewTracker creates an empty collision tracker.
func NewTracker() *Tracker {
	return &Tracker{buckets: make(map[uint64]int)}
}

// Observe records that a Pack byte string hashed into the given bucket.
// distinctInBucket is the number of distinct Pack strings already stored in
// that bucket before this one (0 on the bucket's first occupant). Observe
// increments the collision counter whenever distinctInBucket > 0.
func (t *Tracker) Observe(hash uint64, distinctInBucket int) {
	t.buckets[hash]++
	if distinctInBucket > 0 {
		t.collision++
	}
}

// Collisions returns the number of bucket collisions observed so far.
func (t *Tracker) Collisions() int {
	return t.collision
}

// Buckets returns the number of distinct hash buckets that have been
// populated.
func (t *Tracker) Buckets() int {
	return len(t.buckets)
}

// Reset clears all tracked state, preserving the map's capacity for reuse.
func (t *Tracker) Reset() {
	for k := range t.buckets {
		delete(t.buckets, k)
	}
	t.collision = 0
}
