package cache

import "sync"

var _ Cache = (*ScopedTestCache)(nil)

// ScopedTestCache is a map backed Cache with no expiry, used in tests.
type ScopedTestCache struct {
	cache       map[string]map[string][]byte
	generations map[string]uint64
	mutex       sync.Mutex

	Invalidations int
}

func NewScopedTestCache() *ScopedTestCache {
	return &ScopedTestCache{
		cache:       make(map[string]map[string][]byte),
		generations: make(map[string]uint64),
	}
}

func (stc *ScopedTestCache) Get(scope, key string) ([]byte, uint64, bool) {
	stc.mutex.Lock()
	defer stc.mutex.Unlock()

	val, ok := stc.cache[scope][key]
	return val, stc.generations[scope], ok
}

func (stc *ScopedTestCache) Set(scope string, gen uint64, key string, value []byte) bool {
	stc.mutex.Lock()
	defer stc.mutex.Unlock()

	if stc.generations[scope] != gen {
		return false
	}
	if _, ok := stc.cache[scope]; !ok {
		stc.cache[scope] = make(map[string][]byte)
	}
	stc.cache[scope][key] = value
	return true
}

func (stc *ScopedTestCache) Invalidate(scope string) {
	stc.mutex.Lock()
	defer stc.mutex.Unlock()

	stc.Invalidations++
	stc.generations[scope]++
	delete(stc.cache, scope)
}
