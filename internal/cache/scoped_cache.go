package cache

import (
	"fmt"
	"sync"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

var _ Cache = (*ScopedCache)(nil)

const megabyte = 1024 * 1024

// ScopedCache is a freecache backed Cache. Each scope carries a generation
// number which is part of every stored key; invalidation bumps it and leaves
// the stale entries to expire.
type ScopedCache struct {
	mainCache     *freecache.Cache
	expireSeconds int

	mutex       sync.Mutex
	generations map[string]uint64
}

func NewScopedCache(sizeMB, expireSeconds int) *ScopedCache {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	return &ScopedCache{
		mainCache:     freecache.NewCache(sizeMB * megabyte),
		expireSeconds: expireSeconds,
		generations:   make(map[string]uint64),
	}
}

func (sc *ScopedCache) generation(scope string) uint64 {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()
	return sc.generations[scope]
}

func fullKey(scope string, gen uint64, key string) []byte {
	return []byte(fmt.Sprintf("%s::%d::%s", scope, gen, key))
}

func (sc *ScopedCache) Get(scope, key string) ([]byte, uint64, bool) {
	gen := sc.generation(scope)
	value, err := sc.mainCache.Get(fullKey(scope, gen, key))
	if err != nil {
		return nil, gen, false
	}
	return value, gen, true
}

// Set stores value under generation gen, unless the scope has moved past it.
func (sc *ScopedCache) Set(scope string, gen uint64, key string, value []byte) bool {
	if sc.generation(scope) != gen {
		return false
	}
	if err := sc.mainCache.Set(fullKey(scope, gen, key), value, sc.expireSeconds); err != nil {
		log.Errorf("scoped cache set [%s/%s]: %s", scope, key, err)
		return false
	}
	return true
}

func (sc *ScopedCache) Invalidate(scope string) {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()
	sc.generations[scope]++
}

// EntryCount reports the number of live entries, stale generations included.
func (sc *ScopedCache) EntryCount() int64 {
	return sc.mainCache.EntryCount()
}
