package ports

import (
	"errors"
	"time"
)

// ErrCacheMiss is returned by CachePort.Get for absent or expired keys.
var ErrCacheMiss = errors.New("cache miss")

type CachePort interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Close() error
}
