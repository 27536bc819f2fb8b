package cache

import (
	"fmt"
	"sync"
)

type CacheKey string

type CachedListResp struct {
	Body []byte
}

// ListCache keeps serialized list responses per owner. Ownership scoping
// makes owners independent, so invalidation is per owner id.
type ListCache struct {
	mu sync.RWMutex

	ownerLists map[int64]map[CacheKey]CachedListResp
}

type Cache interface {
	Set(ownerID int64, key CacheKey, value CachedListResp)
	Get(ownerID int64, key CacheKey) (CachedListResp, bool)
	InvalidateOwner(ownerID int64)
}

func NewListCache() *ListCache {
	return &ListCache{
		ownerLists: make(map[int64]map[CacheKey]CachedListResp),
	}
}

// ListKey builds the cache key for one page of one filtered listing.
func ListKey(tag string, pageSize, pageNumber int) CacheKey {
	return CacheKey(fmt.Sprintf("list:%s:%d:%d", tag, pageSize, pageNumber))
}

func (c *ListCache) Set(ownerID int64, key CacheKey, value CachedListResp) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ownerLists[ownerID] == nil {
		c.ownerLists[ownerID] = make(map[CacheKey]CachedListResp)
	}
	c.ownerLists[ownerID][key] = value
}

func (c *ListCache) Get(ownerID int64, key CacheKey) (CachedListResp, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.ownerLists[ownerID]
	if !ok {
		return CachedListResp{}, false
	}
	v, ok := m[key]
	return v, ok
}

func (c *ListCache) InvalidateOwner(ownerID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.ownerLists, ownerID)
}
