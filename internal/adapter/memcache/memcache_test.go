package memcache

import (
	"testing"
	"time"

	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheAdapter(t *testing.T) {
	c := NewCacheAdapter(time.Minute, time.Minute)

	_, err := c.Get("bike:1")
	assert.ErrorIs(t, err, ports.ErrCacheMiss)

	value := []byte(`{"bike_id":"1"}`)
	require.NoError(t, c.Set("bike:1", value, time.Minute))
	value[0] = 'X'

	got, err := c.Get("bike:1")
	require.NoError(t, err)
	assert.Equal(t, `{"bike_id":"1"}`, string(got))

	require.NoError(t, c.Delete("bike:1"))
	_, err = c.Get("bike:1")
	assert.ErrorIs(t, err, ports.ErrCacheMiss)
}

func TestCacheAdapterExpires(t *testing.T) {
	c := NewCacheAdapter(time.Minute, time.Minute)

	require.NoError(t, c.Set("bike:2", []byte("x"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, err := c.Get("bike:2")
	assert.ErrorIs(t, err, ports.ErrCacheMiss)
}
