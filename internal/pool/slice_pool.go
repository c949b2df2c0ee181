package pool

import "sync"

// SlicePool pools reusable slices of a single element type T.
//
// It generalizes the old per-type (int64/float64/string) slice pools into a
// single generic implementation: the aggregate layer instantiates one
// SlicePool per element type for the scratch storage of set and map decode,
// avoiding an allocation per decoded set or map whenever the pooled backing
// array is already large enough.
type SlicePool[T any] struct {
	pool sync.Pool
}

// NewSlicePool creates an empty slice pool for element type T.
func NewSlicePool[T any]() *SlicePool[T] {
	return &SlicePool[T]{
		pool: sync.Pool{
			New: func() any {
				s := make([]T, 0)
				return &s
			},
		},
	}
}

// Get retrieves a slice of length size from the pool.
//
// The returned slice will have the exact length specified by size. If the
// pooled backing array has insufficient capacity, a new one is allocated.
// The caller must call the returned cleanup function (typically via defer)
// to return the slice to the pool.
func (p *SlicePool[T]) Get(size int) ([]T, func()) {
	ptr, _ := p.pool.Get().(*[]T)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]T, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { p.pool.Put(ptr) }
}
