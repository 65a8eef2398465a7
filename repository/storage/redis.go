package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

type redisStorage struct {
	client *redis.Client
	prefix string
}

// NewRedisStorage stores every key under prefix in Redis without expiration.
func NewRedisStorage(client *redis.Client, prefix string) Storage {
	return &redisStorage{client: client, prefix: prefix}
}

func (r *redisStorage) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, r.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	return val, nil
}

func (r *redisStorage) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, r.prefix+key, value, 0).Err()
}

func (r *redisStorage) Remove(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.prefix+key).Err()
}
