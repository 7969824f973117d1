// Package cache provides a small generic LRU used to memoize generated
// convolution kernels.
//
//	c := cache.New[string, []float32](32)
//	k := c.GetOrCreate("gauss/9", func() []float32 { return build(9) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
