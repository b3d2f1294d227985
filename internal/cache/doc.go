// Package cache provides a small thread-safe LRU cache.
//
// The drawing layer uses it to share gradient colour tables between paints
// with identical stops, so a gradient redrawn every frame builds its table
// once:
//
//	tables := cache.New[string, *gradient.Table](60)
//	t := tables.GetOrCreate(key, func() *gradient.Table { ... })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
