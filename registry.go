package enumx

import (
	"fmt"
	"strconv"

	"github.com/llxisdsh/pb"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// named holds descriptors registered via WithName, for callers that only
// know an enum by its configured name (config loaders, wire decoders).
var named pb.MapOf[string, *Info]

// registerName binds name to d, idempotently for the same descriptor.
// Claiming a taken name with a different definition is a programming error
// and panics.
func registerName(name string, d *Info) {
	if actual, loaded := named.LoadOrStore(name, d); loaded && actual != d {
		panic(fmt.Errorf("%w: %q", ErrNameTaken, name))
	}
}

// LookupName returns the descriptor registered under name.
func LookupName(name string) (*Info, bool) {
	return named.Load(name)
}

// RangeNames calls f for every registered descriptor until f returns false.
// Iteration order is unspecified.
func RangeNames(f func(name string, d *Info) bool) {
	named.Range(f)
}

// providers holds deferred definitions keyed like the type cache. Entries
// are never removed; once a type's descriptor is published the cache
// answers first and the provider goes cold.
var providers = newDenseMap[uintptr, func() (*Info, error)](hashTypeKey)

var buildGroup singleflight.Group

// setProvider installs a lazy definition. The first provider per type wins;
// later ones are dropped.
func setProvider(key uintptr, f func() (*Info, error)) {
	providers.getOrAdd(key, func() func() (*Info, error) { return f })
}

// resolve returns the descriptor for key, building it from the installed
// provider when the cache misses. Concurrent resolves of one type collapse
// into a single provider invocation.
func resolve(key uintptr) (*Info, error) {
	if d, ok := cachedInfo(key); ok {
		return d, nil
	}
	v, err, _ := buildGroup.Do(strconv.FormatUint(uint64(key), 16), func() (any, error) {
		if d, ok := cachedInfo(key); ok {
			return d, nil
		}
		build, ok := providers.get(key)
		if !ok {
			return nil, ErrUndefined
		}
		d, err := publishInfo(key, build)
		if err != nil {
			return nil, err
		}
		if d.name != "" {
			registerName(d.name, d)
		}
		return d, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Info), nil
}

// Preload builds every pending lazy definition concurrently and returns the
// first error. Definitions that build cleanly stay published even when a
// sibling fails.
func Preload() error {
	var keys []uintptr
	providers.rangeEntries(func(k uintptr, _ func() (*Info, error)) bool {
		keys = append(keys, k)
		return true
	})
	var g errgroup.Group
	for _, k := range keys {
		g.Go(func() error {
			_, err := resolve(k)
			return err
		})
	}
	return g.Wait()
}
