package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/cheque_management_app/internal/core/ports"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// ErrEmptyKey is returned when Lock is called without a key.
var ErrEmptyKey = errors.New("lock key cannot be empty")

// RedisOptions tunes the redsync mutexes.
type RedisOptions struct {
	Expiry     time.Duration
	Tries      int
	RetryDelay time.Duration
}

// DefaultRedisOptions suits allocations that finish within a few seconds.
func DefaultRedisOptions() RedisOptions {
	return RedisOptions{
		Expiry:     30 * time.Second,
		Tries:      20,
		RetryDelay: 250 * time.Millisecond,
	}
}

// RedisLocker is a distributed ports.Locker backed by the RedLock algorithm.
type RedisLocker struct {
	rs   *redsync.Redsync
	opts RedisOptions
}

var _ ports.Locker = (*RedisLocker)(nil)

// NewRedisLocker creates a locker on an existing client.
func NewRedisLocker(client redis.UniversalClient, opts RedisOptions) *RedisLocker {
	return &RedisLocker{rs: redsync.New(goredis.NewPool(client)), opts: opts}
}

// NewRedisLockerFromURL parses a redis:// URL, verifies connectivity and returns the
// locker together with a close func for the client.
func NewRedisLockerFromURL(ctx context.Context, url string, expiry time.Duration) (*RedisLocker, func() error, error) {
	redisOpts, err := redis.ParseURL(url)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(redisOpts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	opts := DefaultRedisOptions()
	if expiry > 0 {
		opts.Expiry = expiry
	}
	return NewRedisLocker(client, opts), client.Close, nil
}

// Lock acquires the distributed mutex for key, retrying per the configured options.
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	mutex := l.rs.NewMutex(
		"lock:"+key,
		redsync.WithExpiry(l.opts.Expiry),
		redsync.WithTries(l.opts.Tries),
		redsync.WithRetryDelay(l.opts.RetryDelay),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	return func() {
		// the work ctx may be cancelled by now; release regardless
		if ok, err := mutex.UnlockContext(context.WithoutCancel(ctx)); !ok || err != nil {
			slog.Warn("failed to release lock", slog.String("lock_key", key), slog.Bool("unlock_ok", ok), slog.Any("error", err))
		}
	}, nil
}
