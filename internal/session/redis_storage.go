package session

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
)

const DefaultRedisKeyPrefix = "fittrack-session||"

// RedisStorage keeps items as plain redis string keys under a prefix.
type RedisStorage struct {
	client *redis.Client
	prefix string
}

func NewRedisStorage(client *redis.Client, prefix string) *RedisStorage {
	if prefix == "" {
		prefix = DefaultRedisKeyPrefix
	}
	return &RedisStorage{
		client: client,
		prefix: prefix,
	}
}

// NewRedisClient creates a traced redis client.
func NewRedisClient(host, port, password string) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: password,
		DB:       0, // use default DB
	})
	rdb.AddHook(redisotel.NewTracingHook())
	return rdb
}

func (rs *RedisStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	value, err := rs.client.Get(ctx, rs.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get [%s]: %w", key, err)
	}
	return value, true, nil
}

func (rs *RedisStorage) SetItem(ctx context.Context, key, value string) error {
	if err := rs.client.Set(ctx, rs.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set [%s]: %w", key, err)
	}
	return nil
}

// SetItems relies on MSET being atomic.
func (rs *RedisStorage) SetItems(ctx context.Context, items map[string]string) error {
	if len(items) == 0 {
		return nil
	}
	pairs := make([]interface{}, 0, len(items)*2)
	for _, key := range sortedKeys(items) {
		pairs = append(pairs, rs.prefix+key, items[key])
	}
	if err := rs.client.MSet(ctx, pairs...).Err(); err != nil {
		return fmt.Errorf("redis mset: %w", err)
	}
	return nil
}

func (rs *RedisStorage) RemoveItem(ctx context.Context, key string) error {
	if err := rs.client.Del(ctx, rs.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del [%s]: %w", key, err)
	}
	return nil
}
