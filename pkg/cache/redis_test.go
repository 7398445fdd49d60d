package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/httpkit/pkg/cache"
)

func TestRedis(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL is not set")
	}
	ctx := context.Background()

	client, err := cache.Connect(ctx, cache.RedisConfig{
		ConnectionURL:  url,
		RetryAttempts:  1,
		RetryInterval:  100 * time.Millisecond,
		ConnectTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, cache.Healthcheck(client)(ctx))

	svc := cache.NewRedis(client, cache.WithPrefix("httpkit-test:"+uuid.NewString()+":"))

	_, err = svc.Get(ctx, "missing")
	require.ErrorIs(t, err, cache.ErrNotFound)

	require.NoError(t, svc.Set(ctx, "k", []byte("v"), time.Minute))
	got, err := svc.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	require.NoError(t, svc.Delete(ctx, "k"))
	_, err = svc.Get(ctx, "k")
	require.ErrorIs(t, err, cache.ErrNotFound)
}

func TestConnect_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := cache.Connect(context.Background(), cache.RedisConfig{
		ConnectionURL:  "not-a-url",
		ConnectTimeout: time.Second,
	})
	require.ErrorIs(t, err, cache.ErrFailedToParseRedisConnString)
}
