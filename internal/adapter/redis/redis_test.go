package redis

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) (*RedisAdapter, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisAdapter(client), server
}

func TestRedisAdapter_SetGet(t *testing.T) {
	adapter, _ := newTestAdapter(t)

	require.NoError(t, adapter.Set("bikes:all", []byte(`[{"bikeId":"abc"}]`), time.Minute))

	value, err := adapter.Get("bikes:all")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"bikeId":"abc"}]`), value)
}

func TestRedisAdapter_GetMissingKey(t *testing.T) {
	adapter, _ := newTestAdapter(t)

	_, err := adapter.Get("bikes:missing")
	assert.Error(t, err)
}

func TestRedisAdapter_TTLExpiry(t *testing.T) {
	adapter, server := newTestAdapter(t)

	require.NoError(t, adapter.Set("bikes:all", []byte("cached"), time.Minute))
	server.FastForward(2 * time.Minute)

	_, err := adapter.Get("bikes:all")
	assert.Error(t, err, "the entry should be gone after its TTL")
}

func TestRedisAdapter_Delete(t *testing.T) {
	adapter, _ := newTestAdapter(t)

	require.NoError(t, adapter.Set("bikes:all", []byte("cached"), time.Minute))
	require.NoError(t, adapter.Delete("bikes:all"))

	_, err := adapter.Get("bikes:all")
	assert.Error(t, err)

	// Deleting a key that is already gone is not an error.
	assert.NoError(t, adapter.Delete("bikes:all"))
}
