//go:build race

package opt

// Race_ reports whether the race detector is enabled. Callers use it to
// fall back to conservative atomic loads/stores that the detector can see.
const Race_ = true
