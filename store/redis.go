package store

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisTimeout = 3 * time.Second

// Redis stores values as plain redis strings under a key prefix.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis connects to the redis server at addr.
func NewRedis(addr, prefix string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errRedisUnavailable.Wrap(err)
	}

	return &Redis{
		client: client,
		prefix: prefix,
	}, nil
}

// Load implements KV.
func (r *Redis) Load(key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	b, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errNotFound
	}

	return b, err
}

// Save implements KV.
func (r *Redis) Save(key string, value []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	return r.client.Set(ctx, r.prefix+key, value, 0).Err()
}

// Close implements KV.
func (r *Redis) Close() error {
	return r.client.Close()
}
