// Package enumx is a runtime metadata cache and query engine for closed
// enumerations over fixed-size integers. A definition lists (name, value,
// attributes) members once; the package derives a descriptor with constant
// time name lookup, logarithmic value lookup, flag algebra, and textual
// parse/format with configurable format fallback, then publishes it in a
// process-wide lock-free cache keyed by the Go type.
package enumx

import "golang.org/x/exp/constraints"

// Integer constrains enum underlying types. Platform-width int, uint and
// uintptr participate with the width they occupy at runtime.
type Integer = constraints.Integer

// Define builds the descriptor for E from its declared members, publishes
// it, and returns the typed handle. Declaration order is meaningful twice:
// when one name recurs, the last declaration wins the name binding, and
// when one value recurs, the first-declared member is the value's canonical
// name.
//
// Defining an already-defined E returns the published descriptor unchanged
// and ignores the new declaration, so racing duplicate Defines observe one
// winner. A member with an empty name panics, as does claiming a registry
// name bound to a different definition.
func Define[E Integer](members []Member[E], opts ...func(*Config)) Type[E] {
	var cfg Config
	for _, o := range opts {
		o(&cfg)
	}
	// newInfo panics on malformed declarations rather than failing, so the
	// build cannot return an error here.
	d, _ := publishInfo(typeKeyOf[E](), func() (*Info, error) {
		return newInfo(members, &cfg), nil
	})
	if d.name != "" {
		registerName(d.name, d)
	}
	return Type[E]{info: d}
}

// DefineLazy installs a deferred definition for E, built on first Of,
// Lookup or Preload. Concurrent first uses share one provider invocation;
// a provider returning an error is retried on the next use. The first
// provider installed per type wins.
func DefineLazy[E Integer](provider func() ([]Member[E], error), opts ...func(*Config)) {
	var cfg Config
	for _, o := range opts {
		o(&cfg)
	}
	setProvider(typeKeyOf[E](), func() (*Info, error) {
		members, err := provider()
		if err != nil {
			return nil, err
		}
		return newInfo(members, &cfg), nil
	})
}

// Of returns the typed handle for a defined enum, building a pending lazy
// definition when needed. It panics when E was never defined or its
// provider fails; Lookup is the soft form.
func Of[E Integer]() Type[E] {
	d, err := resolve(typeKeyOf[E]())
	if err != nil {
		panic(err)
	}
	return Type[E]{info: d}
}

// Lookup returns the typed handle for a defined enum, reporting false when
// E has no definition or its lazy provider failed.
func Lookup[E Integer]() (Type[E], bool) {
	d, err := resolve(typeKeyOf[E]())
	if err != nil {
		return Type[E]{}, false
	}
	return Type[E]{info: d}, true
}
