// Package cache provides a generic, thread-safe memo map for values that are
// expensive to build but cheap to share, such as compiled validators keyed by
// holder type.
//
// # Key Features
//
//   - Generic implementation supporting any comparable key type and any value type
//   - Lock-shared read path: cache hits only take a read lock and never block each other
//   - Values are computed outside of any lock, so compute functions may re-enter the cache
//   - Double-checked insert: when two goroutines race on the same key, the first stored
//     value wins and the redundant one is discarded
//   - No eviction: the map grows for the lifetime of the process, which is fine when the
//     key space is bounded by program structure rather than by traffic
//
// # Usage
//
//	var validators cache.Map[reflect.Type, *Validator]
//
//	v, err := validators.GetOrCompute(t, func() (*Validator, error) {
//		return compile(t)
//	})
//
// Errors returned from the compute function are not stored, so a failing key is
// recomputed on every call.
package cache
