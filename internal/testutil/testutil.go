package testutil

// Package testutil provides helpers for tests that need shared
// infrastructure. Redis-backed tests are skipped when no server is
// reachable unless TEST_REQUIRE_REDIS is set.

import (
	"context"
	"net"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// TestingTB is the subset of testing.TB these helpers use.
type TestingTB interface {
	Helper()
	Skip(args ...interface{})
	Skipf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	Logf(format string, args ...interface{})
}

// SetupTestRedis creates a Redis client for testing, skipping the test
// when Redis is not available (failing instead when TEST_REQUIRE_REDIS
// is set, for CI).
func SetupTestRedis(t TestingTB) *redis.Client {
	t.Helper()

	addr, ok := GetTestRedisAddr(t)
	if !ok {
		if requireRedis() {
			t.Fatal("Redis not available for testing")
		}
		t.Skip("Redis not available for testing")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		if cerr := client.Close(); cerr != nil {
			t.Logf("warning: failed to close redis client after ping error: %v", cerr)
		}
		if requireRedis() {
			t.Fatalf("Redis not available for testing at %s: %v", addr, err)
		}
		t.Skipf("Redis not available for testing at %s: %v", addr, err)
	}

	return client
}

// GetTestRedisAddr returns a reachable Redis address for tests.
func GetTestRedisAddr(t TestingTB) (string, bool) {
	t.Helper()

	if ciAddr := os.Getenv("REDIS_ADDR"); ciAddr != "" {
		return testRedisConnection(ciAddr)
	}

	for _, candidate := range []string{"redis:6379", "localhost:6379", "localhost:56379"} {
		if addr, ok := testRedisConnection(candidate); ok {
			return addr, true
		}
	}
	return "", false
}

func testRedisConnection(addr string) (string, bool) {
	conn, err := net.DialTimeout("tcp", addr, 500*time.Millisecond)
	if err != nil {
		return "", false
	}
	_ = conn.Close()
	return addr, true
}

func requireRedis() bool {
	return os.Getenv("TEST_REQUIRE_REDIS") != "" || os.Getenv("TEST_REQUIRE_INFRA") != ""
}

// TestTime returns a fixed time for deterministic tests.
func TestTime() time.Time {
	return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
}
