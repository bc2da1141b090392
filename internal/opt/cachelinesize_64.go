//go:build enumx_cachelinesize_64

package opt

// CacheLineSize_ forced to 64 bytes via the enumx_cachelinesize_64 build tag.
const CacheLineSize_ = 64
