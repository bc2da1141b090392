package enumx

import (
	"sync/atomic"
	"unsafe"
)

// minTableCap is the entry capacity of a denseMap's first generation.
const minTableCap = 4

// denseEntry is one slot of a denseTable. An entry becomes visible to
// readers only through an atomic bucket-head store; after that its fields
// are never written again for the lifetime of the generation.
type denseEntry[K comparable, V any] struct {
	key  K
	val  V
	hash uintptr
	next int32 // 1-based index of the next entry in the chain, 0 ends it
}

// denseTable is one generation of a denseMap: a dense entry array plus a
// power-of-two bucket array holding 1-based entry indexes. Insertion order
// is preserved across growth, so entries[:n] replays adds oldest first.
type denseTable[K comparable, V any] struct {
	heads   []atomic.Int32
	mask    uintptr
	entries []denseEntry[K, V]
	n       atomic.Int32 // committed entries, written under the owning lock
}

// denseMap is a hash map specialized for grow-only workloads: lock-free
// lookups at any time, inserts serialized by a spinlock. The entry array
// doubles when full; lookups racing a growth keep reading the generation
// they loaded.
type denseMap[K comparable, V any] struct {
	_     noCopy
	table unsafe.Pointer // *denseTable[K, V], nil until the first insert
	lock  uint32
	hash  func(K) uintptr
}

func newDenseMap[K comparable, V any](hash func(K) uintptr) *denseMap[K, V] {
	return &denseMap[K, V]{hash: hash}
}

// get returns the value mapped to key, if present. It never blocks.
func (m *denseMap[K, V]) get(key K) (V, bool) {
	t := (*denseTable[K, V])(loadPtr(&m.table))
	if t == nil {
		var zero V
		return zero, false
	}
	return tableGet(t, m.hash(key), key)
}

// getOrAdd returns the existing value for key or inserts the one produced
// by fn. fn runs with the insert lock held, so it is invoked at most once
// per absent key. loaded reports whether the value was already present.
func (m *denseMap[K, V]) getOrAdd(key K, fn func() V) (v V, loaded bool) {
	h := m.hash(key)
	t := (*denseTable[K, V])(loadPtr(&m.table))
	if t != nil {
		if v, ok := tableGet(t, h, key); ok {
			return v, true
		}
	}
	m.lockTable()
	t = (*denseTable[K, V])(loadPtr(&m.table))
	if t != nil {
		if v, ok := tableGet(t, h, key); ok {
			m.unlockTable()
			return v, true
		}
	}
	v = fn()
	if t == nil || int(t.n.Load()) == len(t.entries) {
		// Build the doubled generation off to the side, append there, and
		// publish the whole table with one pointer store.
		nt := cloneTable(t, nextTableCap(t))
		appendEntry(nt, h, key, v)
		storePtr(&m.table, unsafe.Pointer(nt))
	} else {
		appendEntry(t, h, key, v)
	}
	m.unlockTable()
	return v, false
}

// size returns the committed entry count of the current generation.
func (m *denseMap[K, V]) size() int {
	t := (*denseTable[K, V])(loadPtr(&m.table))
	if t == nil {
		return 0
	}
	return int(t.n.Load())
}

// rangeEntries calls yield for each committed entry in insertion order,
// observing a single generation. Entries added after the snapshot of the
// committed count are not visited.
func (m *denseMap[K, V]) rangeEntries(yield func(K, V) bool) {
	t := (*denseTable[K, V])(loadPtr(&m.table))
	if t == nil {
		return
	}
	n := int(t.n.Load())
	for i := range n {
		e := &t.entries[i]
		if !yield(e.key, e.val) {
			return
		}
	}
}

// ==== insert lock ====

// lockTable acquires the insert lock. Uncontended acquisition is a single
// CAS; contended callers spin, then sleep.
func (m *denseMap[K, V]) lockTable() {
	if atomic.CompareAndSwapUint32(&m.lock, 0, 1) {
		return
	}
	m.slowLock()
}

func (m *denseMap[K, V]) slowLock() {
	var spins int
	for !m.tryLock() {
		delay(&spins)
	}
}

//go:nosplit
func (m *denseMap[K, V]) tryLock() bool {
	return atomic.LoadUint32(&m.lock) == 0 &&
		atomic.CompareAndSwapUint32(&m.lock, 0, 1)
}

//go:nosplit
func (m *denseMap[K, V]) unlockTable() {
	atomic.StoreUint32(&m.lock, 0)
}

// ==== generation building blocks ====

// tableGet walks one bucket chain of a published generation. The full hash
// is compared first to skip key comparisons on collisions.
func tableGet[K comparable, V any](t *denseTable[K, V], h uintptr, key K) (V, bool) {
	for i := t.heads[h&t.mask].Load(); i != 0; {
		e := &t.entries[i-1]
		if e.hash == h && e.key == key {
			return e.val, true
		}
		i = e.next
	}
	var zero V
	return zero, false
}

// nextTableCap sizes the generation that replaces t.
func nextTableCap[K comparable, V any](t *denseTable[K, V]) int {
	if t == nil {
		return minTableCap
	}
	c := len(t.entries)
	if int(t.n.Load()) == c {
		c *= 2
	}
	return c
}

// cloneTable builds a fresh generation of the given capacity holding t's
// committed entries in their original dense order, with chains rebuilt for
// the new bucket width. The result is unpublished: callers may append to it
// plainly before making it visible.
func cloneTable[K comparable, V any](t *denseTable[K, V], capacity int) *denseTable[K, V] {
	nt := &denseTable[K, V]{
		heads:   make([]atomic.Int32, capacity),
		mask:    uintptr(capacity - 1),
		entries: make([]denseEntry[K, V], capacity),
	}
	if t != nil {
		n := int(t.n.Load())
		copy(nt.entries[:n], t.entries[:n])
		for i := range n {
			e := &nt.entries[i]
			idx := e.hash & nt.mask
			e.next = nt.heads[idx].Load()
			nt.heads[idx].Store(int32(i + 1))
		}
		nt.n.Store(int32(n))
	}
	return nt
}

// appendEntry commits (key, v) into t's next free slot. For a live
// generation the bucket-head store is what publishes the entry, so every
// other field is in place before it. The committed count follows, keeping
// rangeEntries within published slots.
func appendEntry[K comparable, V any](t *denseTable[K, V], h uintptr, key K, v V) {
	i := int(t.n.Load())
	e := &t.entries[i]
	e.key, e.val, e.hash = key, v, h
	idx := h & t.mask
	e.next = t.heads[idx].Load()
	t.heads[idx].Store(int32(i + 1))
	t.n.Store(int32(i + 1))
}

// cloneAdd returns a fresh generation containing t's entries plus (key, v),
// leaving t untouched. Copy-on-write callers publish the result with a
// single compare-and-swap; the returned table is never mutated afterwards.
func cloneAdd[K comparable, V any](t *denseTable[K, V], h uintptr, key K, v V) *denseTable[K, V] {
	nt := cloneTable(t, nextTableCap(t))
	appendEntry(nt, h, key, v)
	return nt
}
