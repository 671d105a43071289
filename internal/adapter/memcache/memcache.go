// Package memcache is the in-process cache used when no Redis address is
// configured.
package memcache

import (
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
)

type CacheAdapter struct {
	cache *cache.Cache
}

var _ ports.CachePort = (*CacheAdapter)(nil)

func NewCacheAdapter(defaultExpiration, cleanupInterval time.Duration) *CacheAdapter {
	return &CacheAdapter{cache: cache.New(defaultExpiration, cleanupInterval)}
}

func (c *CacheAdapter) Get(key string) ([]byte, error) {
	value, found := c.cache.Get(key)
	if !found {
		return nil, ports.ErrCacheMiss
	}
	data, ok := value.([]byte)
	if !ok {
		return nil, ports.ErrCacheMiss
	}
	return data, nil
}

func (c *CacheAdapter) Set(key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	c.cache.Set(key, stored, ttl)
	return nil
}

func (c *CacheAdapter) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

func (c *CacheAdapter) Close() error {
	c.cache.Flush()
	return nil
}
