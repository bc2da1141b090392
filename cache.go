package enumx

import (
	"sync/atomic"
	"unsafe"

	"github.com/llxisdsh/enumx/internal/opt"
)

// typeCache is the global snapshot of every built descriptor, keyed by
// runtime type descriptor pointer. The snapshot is one immutable denseTable
// generation, replaced wholesale by CAS, so the hot lookup is an atomic
// load, a masked index and a short chain walk. Padding keeps the snapshot
// pointer off cache lines that neighboring globals write.
var typeCache struct {
	_    [opt.CacheLineSize_]byte
	snap atomic.Pointer[denseTable[uintptr, *Info]]
	_    [(opt.CacheLineSize_ - unsafe.Sizeof(atomic.Pointer[denseTable[uintptr, *Info]]{})%opt.CacheLineSize_) % opt.CacheLineSize_]byte
}

// hashTypeKey spreads a type descriptor pointer. Descriptors are aligned
// allocations, so without mixing the masked low bits carry no entropy.
//
//go:nosplit
func hashTypeKey(k uintptr) uintptr { return spread(k) }

// cachedInfo returns the published descriptor for key, if any.
func cachedInfo(key uintptr) (*Info, bool) {
	t := typeCache.snap.Load()
	if t == nil {
		return nil, false
	}
	return tableGet(t, hashTypeKey(key), key)
}

// cachedTypes reports how many descriptors the current snapshot holds.
func cachedTypes() int {
	t := typeCache.snap.Load()
	if t == nil {
		return 0
	}
	return int(t.n.Load())
}

// publishInfo returns the descriptor under key, installing the one built by
// build when absent. Losing a publication race discards the local candidate
// and adopts the winner, so every caller observes one descriptor identity
// per key for the process lifetime. build can therefore run more than once
// across racing callers, but its result is only visible when it wins.
func publishInfo(key uintptr, build func() (*Info, error)) (*Info, error) {
	if d, ok := cachedInfo(key); ok {
		return d, nil
	}
	cand, err := build()
	if err != nil {
		return nil, err
	}
	h := hashTypeKey(key)
	for {
		t := typeCache.snap.Load()
		if t != nil {
			if d, ok := tableGet(t, h, key); ok {
				return d, nil
			}
		}
		nt := cloneAdd(t, h, key, cand)
		if typeCache.snap.CompareAndSwap(t, nt) {
			return cand, nil
		}
	}
}
