package cache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/dmitrymomot/httpkit/pkg/cache"
)

func TestMemory_SetGetDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := cache.NewMemory(10)
	defer m.Close()

	_, err := m.Get(ctx, "missing")
	require.ErrorIs(t, err, cache.ErrNotFound)

	require.NoError(t, m.Set(ctx, "k", []byte("v"), 0))
	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	got[0] = 'x'
	again, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), again, "callers get copies")

	require.NoError(t, m.Delete(ctx, "k"))
	_, err = m.Get(ctx, "k")
	require.ErrorIs(t, err, cache.ErrNotFound)
	require.NoError(t, m.Delete(ctx, "k"))
}

func TestMemory_TTL(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mock := clock.NewMock()
	m := cache.NewMemory(10, cache.WithClock(mock))
	defer m.Close()

	require.NoError(t, m.Set(ctx, "short", []byte("1"), time.Second))
	require.NoError(t, m.Set(ctx, "forever", []byte("2"), 0))

	mock.Add(500 * time.Millisecond)
	_, err := m.Get(ctx, "short")
	require.NoError(t, err)

	mock.Add(time.Second)
	_, err = m.Get(ctx, "short")
	require.ErrorIs(t, err, cache.ErrNotFound)

	_, err = m.Get(ctx, "forever")
	require.NoError(t, err)
}

func TestMemory_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := cache.NewMemory(2)
	defer m.Close()

	require.NoError(t, m.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, m.Set(ctx, "b", []byte("2"), 0))
	_, err := m.Get(ctx, "a")
	require.NoError(t, err)
	require.NoError(t, m.Set(ctx, "c", []byte("3"), 0))

	assert.Equal(t, 2, m.Len())
	_, err = m.Get(ctx, "b")
	require.ErrorIs(t, err, cache.ErrNotFound)
	_, err = m.Get(ctx, "a")
	require.NoError(t, err)
}

func TestMemory_Purge(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mock := clock.NewMock()
	m := cache.NewMemory(10, cache.WithClock(mock))
	defer m.Close()

	for i := range 4 {
		require.NoError(t, m.Set(ctx, fmt.Sprint(i), []byte("v"), time.Duration(i+1)*time.Second))
	}
	mock.Add(2 * time.Second)

	assert.Equal(t, 2, m.Purge())
	assert.Equal(t, 2, m.Len())
}

func TestMemory_JanitorStopsOnClose(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	ctx := context.Background()

	mock := clock.NewMock()
	m := cache.NewMemory(10, cache.WithClock(mock), cache.WithJanitor(time.Minute))

	require.NoError(t, m.Set(ctx, "k", []byte("v"), time.Second))
	mock.Add(2 * time.Minute)

	require.Eventually(t, func() bool { return m.Len() == 0 }, time.Second, 10*time.Millisecond)

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
}

func TestNewMemory_PanicsOnInvalidCapacity(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { cache.NewMemory(0) })
}
