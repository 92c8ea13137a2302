package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/cheque_management_app/internal/core/ports"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisLocker(t *testing.T) *RedisLocker {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisLocker(client, RedisOptions{Expiry: 5 * time.Second, Tries: 200, RetryDelay: 5 * time.Millisecond})
}

// assertMutualExclusion runs workers that all take the same key and checks no two overlap.
func assertMutualExclusion(t *testing.T, l ports.Locker) {
	t.Helper()
	var inside, maxInside atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(context.Background(), "chequebook:account:acc-1")
			if !assert.NoError(t, err) {
				return
			}
			n := inside.Add(1)
			for {
				m := maxInside.Load()
				if n <= m || maxInside.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			inside.Add(-1)
			unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), maxInside.Load())
}

func TestKeyedMutex_MutualExclusion(t *testing.T) {
	assertMutualExclusion(t, NewKeyedMutex())
}

func TestKeyedMutex_DistinctKeysDoNotBlock(t *testing.T) {
	km := NewKeyedMutex()
	unlockA, err := km.Lock(context.Background(), "a")
	require.NoError(t, err)
	defer unlockA()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	unlockB, err := km.Lock(ctx, "b")
	require.NoError(t, err)
	unlockB()
}

func TestKeyedMutex_ContextCancelled(t *testing.T) {
	km := NewKeyedMutex()
	unlock, err := km.Lock(context.Background(), "a")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = km.Lock(ctx, "a")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	unlock() // second call is a no-op

	again, err := km.Lock(context.Background(), "a")
	require.NoError(t, err)
	again()
	assert.Empty(t, km.entries)
}

func TestRedisLocker_MutualExclusion(t *testing.T) {
	assertMutualExclusion(t, newTestRedisLocker(t))
}

func TestRedisLocker_EmptyKey(t *testing.T) {
	_, err := newTestRedisLocker(t).Lock(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestRedisLocker_ReleaseAllowsReacquire(t *testing.T) {
	l := newTestRedisLocker(t)
	unlock, err := l.Lock(context.Background(), "k")
	require.NoError(t, err)
	unlock()

	unlock, err = l.Lock(context.Background(), "k")
	require.NoError(t, err)
	unlock()
}
