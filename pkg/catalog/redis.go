package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOption configures OpenRedis.
type RedisOption func(*redisOptions)

type redisOptions struct {
	poolSize      int
	retryAttempts int
	retryInterval time.Duration
	readTimeout   time.Duration
	dialTimeout   time.Duration
}

func defaultRedisOptions() *redisOptions {
	return &redisOptions{
		poolSize:      4,
		retryAttempts: 3,
		retryInterval: time.Second,
		readTimeout:   3 * time.Second,
		dialTimeout:   5 * time.Second,
	}
}

// WithRedisPoolSize sets the maximum number of pooled connections.
// Default: 4
func WithRedisPoolSize(n int) RedisOption {
	return func(o *redisOptions) {
		o.poolSize = n
	}
}

// WithRedisRetry sets how often OpenRedis pings before giving up. The wait
// between attempts grows linearly from interval.
// Default: 3 attempts, 1 second
func WithRedisRetry(attempts int, interval time.Duration) RedisOption {
	return func(o *redisOptions) {
		o.retryAttempts = attempts
		o.retryInterval = interval
	}
}

// WithRedisTimeouts sets the dial and read timeouts.
// Default: 5 seconds dial, 3 seconds read
func WithRedisTimeouts(dial, read time.Duration) RedisOption {
	return func(o *redisOptions) {
		o.dialTimeout = dial
		o.readTimeout = read
	}
}

// OpenRedis connects to the Redis server holding a RedisSource hash.
// Both redis:// and rediss:// URLs are accepted.
//
//	client, err := catalog.OpenRedis(ctx, os.Getenv("REDIS_URL"))
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//	c, err := catalog.New(catalog.WithSource(ctx, catalog.NewRedisSource(client, "jack:templates")))
func OpenRedis(ctx context.Context, url string, opts ...RedisOption) (redis.UniversalClient, error) {
	if url == "" {
		return nil, ErrEmptyRedisURL
	}
	if !strings.HasPrefix(url, "redis://") && !strings.HasPrefix(url, "rediss://") {
		return nil, ErrRedisURL
	}

	o := defaultRedisOptions()
	for _, opt := range opts {
		opt(o)
	}

	ropts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrRedisURL, err)
	}
	ropts.PoolSize = o.poolSize
	ropts.ReadTimeout = o.readTimeout
	ropts.DialTimeout = o.dialTimeout

	attempts := max(o.retryAttempts, 1)
	for i := range attempts {
		client := redis.NewClient(ropts)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisConnect, ctx.Err())
		case <-time.After(time.Duration(i+1) * o.retryInterval):
		}
	}
	return nil, ErrRedisConnect
}
