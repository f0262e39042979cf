package cache

// Cache stores byte values under a scope, e.g. a user. Invalidating a scope
// makes every value stored under it unreachable.
//
// Get also returns the scope generation it read at. Set only stores a value
// computed at that generation; it refuses once the scope has been invalidated
// in between, so a result built from pre-invalidation data is never served.
type Cache interface {
	Get(scope, key string) (value []byte, gen uint64, found bool)
	Set(scope string, gen uint64, key string, value []byte) bool
	Invalidate(scope string)
}
