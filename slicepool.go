package lencode

import (
	"reflect"
	"sync"

	"github.com/sam0x17/lencode/internal/pool"
)

// slicePools caches one pool.SlicePool[T] per distinct element type T,
// since a generic package-level var can't itself be parameterized. Map and
// set decode use these for the scratch storage they discard once the final
// map is built, a genuine get/cleanup cycle, unlike the slice a sequence
// decode hands back to the caller (which must not be pooled, since
// ownership transfers permanently).
var slicePools sync.Map // reflect.Type -> *pool.SlicePool[T]

func getSlicePool[T any]() *pool.SlicePool[T] {
	key := reflect.TypeOf((*T)(nil))

	if p, ok := slicePools.Load(key); ok {
		return p.(*pool.SlicePool[T])
	}

	p := pool.NewSlicePool[T]()
	actual, _ := slicePools.LoadOrStore(key, p)

	return actual.(*pool.SlicePool[T])
}
