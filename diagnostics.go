package pixkern

import (
	"github.com/gogpu/pixkern/internal/filter"
	"github.com/gogpu/pixkern/internal/wide"
)

// SIMD names the vector width the batch kernels run with: "avx512", "avx2",
// "neon", "sse2" or "scalar".
func SIMD() string {
	return wide.Name()
}

// CacheStats is a snapshot of the blur kernel cache.
type CacheStats struct {
	Entries   int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
	HitRate   float64
}

// KernelCacheStats reports how often Gaussian, box and tent weights were
// reused rather than rebuilt.
func KernelCacheStats() CacheStats {
	s := filter.KernelCacheStats()
	return CacheStats{
		Entries:   s.Len,
		Capacity:  s.Capacity,
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
		HitRate:   s.HitRate,
	}
}
