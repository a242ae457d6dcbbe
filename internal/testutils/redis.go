package testutils

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	dnderr "github.com/KirkDiggler/combo-tracker/internal/errors"
)

// TestRedisDB keeps tests away from a developer's working data
const TestRedisDB = 15

// TestRedisOptions returns client options for the test instance. REDIS_URL
// overrides the default localhost address.
func TestRedisOptions() (*redis.Options, error) {
	opts := &redis.Options{Addr: "localhost:6379"}

	if url := os.Getenv("REDIS_URL"); url != "" {
		parsed, err := redis.ParseURL(url)
		if err != nil {
			return nil, dnderr.WrapWithCode(err, dnderr.CodeValidation, "invalid REDIS_URL")
		}
		opts = parsed
	}

	opts.DB = TestRedisDB
	return opts, nil
}

// CreateTestRedisClientOrSkip creates a Redis client on a flushed test
// database, or skips the test if Redis is not available
func CreateTestRedisClientOrSkip(t *testing.T) redis.UniversalClient {
	t.Helper()

	opts, err := TestRedisOptions()
	require.NoError(t, err)

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available for testing: %v", err)
	}

	require.NoError(t, client.FlushDB(ctx).Err(), "Failed to flush test Redis database")

	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})

	return client
}

// WaitForRedis pings until Redis answers or the timeout passes
func WaitForRedis(ctx context.Context, client redis.UniversalClient, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		pingCtx, cancel := context.WithTimeout(ctx, time.Second)
		err := client.Ping(pingCtx).Err()
		cancel()

		if err == nil {
			return nil
		}

		time.Sleep(100 * time.Millisecond)
	}

	return dnderr.Newf(dnderr.CodeUnavailable, "redis not ready after %v", timeout)
}
