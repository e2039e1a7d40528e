package testing

import (
	"context"
	"net"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
)

// GetRedisClientAndCtx connects to the redis pointed to by REDIS_HOST (default localhost).
func GetRedisClientAndCtx(t *testing.T) (context.Context, *redis.Client) {
	t.Helper()

	redisHost := os.Getenv("REDIS_HOST")
	if redisHost == "" {
		redisHost = "localhost"
	}
	redisPort := os.Getenv("REDIS_PORT")
	if redisPort == "" {
		redisPort = "6379"
	}
	t.Logf("using redis: [%s:%s]", redisHost, redisPort)

	return connectRedis(t, redisHost, redisPort, os.Getenv("REDIS_PASS"))
}

// RunRedisContainer starts a throwaway redis container and returns a client
// connected to it. The container is removed on test cleanup.
func RunRedisContainer(t *testing.T) (context.Context, *redis.Client) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "could not create dockertest pool")
	require.NoError(t, pool.Client.Ping(), "could not ping docker")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "run redis")
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("redis teardown: %s", err)
		}
	})

	redisPort := resource.GetPort("6379/tcp")
	var rdb *redis.Client
	require.NoError(t, pool.Retry(func() error {
		rdb = redis.NewClient(&redis.Options{Addr: net.JoinHostPort("localhost", redisPort)})
		return rdb.Ping(context.Background()).Err()
	}))
	_ = rdb.Close()

	return connectRedis(t, "localhost", redisPort, "")
}

func connectRedis(t *testing.T, host, port, password string) (context.Context, *redis.Client) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: password,
		DB:       0, // use default DB
	})
	t.Cleanup(func() {
		_ = rdb.Close()
	})

	pingRes, err := rdb.Ping(ctx).Result()
	require.NoError(t, err)
	t.Logf("redis ping res: %s", pingRes)

	return ctx, rdb
}
