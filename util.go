package enumx

import (
	"runtime"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/llxisdsh/enumx/internal/opt"
)

// ============================================================================
// Atomic Utilities
// ============================================================================

// isTSO_ detects TSO architectures; on TSO, plain reads/writes are safe for
// pointers and native word-sized integers
const isTSO_ = !opt.Race_ &&
	(runtime.GOARCH == "amd64" ||
		runtime.GOARCH == "386" ||
		runtime.GOARCH == "s390x")

// loadPtr loads a pointer atomically on non-TSO architectures.
// On TSO architectures, it performs a plain pointer load.
//
//go:nosplit
func loadPtr(addr *unsafe.Pointer) unsafe.Pointer {
	if opt.Race_ {
		return atomic.LoadPointer(addr)
	} else {
		if isTSO_ {
			return *addr
		} else {
			return atomic.LoadPointer(addr)
		}
	}
}

// storePtr stores a pointer atomically on non-TSO architectures.
// On TSO architectures, it performs a plain pointer store.
//
//go:nosplit
func storePtr(addr *unsafe.Pointer, val unsafe.Pointer) {
	if opt.Race_ {
		atomic.StorePointer(addr, val)
	} else {
		if isTSO_ {
			*addr = val
		} else {
			atomic.StorePointer(addr, val)
		}
	}
}

// ============================================================================
// Hash Utilities
// ============================================================================

// spread improves hash distribution by XORing the original hash with its high
// bits, then multiplying by the golden ratio constant. It increases randomness
// in the lower bits, which is what bucket index masking consumes. Particularly
// effective for aligned pointers, whose significant bits sit high.
//
//go:nosplit
func spread(h uintptr) uintptr {
	h ^= h >> 16
	h ^= h >> 8
	h ^= h >> 4
	if unsafe.Sizeof(h) == 8 {
		var c64 uint64 = 0x9e3779b97f4a7c15
		h *= uintptr(c64)
	} else {
		var c32 uint32 = 0x9e3779b1
		h *= uintptr(c32)
	}
	return h
}

// hashName hashes a member name for the prime-sized name index. Enum names
// are short trusted identifiers, so a simple multiplicative roll keeps cache
// affinity without seeding.
//
//go:nosplit
func hashName(s string) uintptr {
	var h uintptr
	for i := 0; i < len(s); i++ {
		h = h*31 + uintptr(s[i])
	}
	return h
}

// ============================================================================
// Type Identity
// ============================================================================

type iEmptyInterface struct {
	Type unsafe.Pointer
	Data unsafe.Pointer
}

// typeKeyOf returns the runtime type descriptor pointer of E, taken from a
// boxed zero value, as a uintptr cache key. Identical types always share one
// descriptor, and the runtime keeps descriptors alive for the program's
// lifetime, so the key is stable and never dangles.
func typeKeyOf[E any]() uintptr {
	var zero E
	a := any(zero)
	return uintptr((*iEmptyInterface)(noescape(unsafe.Pointer(&a))).Type)
}

// noescape hides a pointer from escape analysis. noescape is
// the identity function, but escape analysis doesn't think the
// output depends on the input. noescape is inlined and currently
// compiles down to zero instructions.
// USE CAREFULLY!
//
//go:nosplit
//go:nocheckptr
func noescape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	//nolint:all
	//goland:noinspection ALL
	return unsafe.Pointer(x ^ 0)
}

// ============================================================================
// Spin Utilities
// ============================================================================

// noCopy may be added to structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
//
// Note that it must not be embedded, due to the Lock and Unlock methods.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

func trySpin(spins *int) bool {
	if runtime_canSpin(*spins) {
		*spins++
		runtime_doSpin()
		return true
	}
	return false
}

func delay(spins *int) {
	if trySpin(spins) {
		return
	}
	*spins = 0
	// time.Sleep with non-zero duration (≈Millisecond level) works
	// effectively as backoff under high concurrency.
	// The 500µs duration is derived from Facebook/folly's implementation:
	// https://github.com/facebook/folly/blob/main/folly/synchronization/detail/Sleeper.h
	time.Sleep(500 * time.Microsecond)
}

// nolint:all
//
//go:linkname runtime_canSpin sync.runtime_canSpin
//goland:noinspection ALL
func runtime_canSpin(i int) bool

// nolint:all
//
//go:linkname runtime_doSpin sync.runtime_doSpin
//goland:noinspection ALL
func runtime_doSpin()
