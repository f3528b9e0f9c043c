// Package testutil provides testing utilities and helpers for the admin console.
package testutil

import (
	"context"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTestRedisDB = 15

// redisCandidates lists addresses probed when REDIS_ADDR is unset: compose service, then local.
var redisCandidates = []string{"redis:6379", "localhost:6379"}

// SetupTestRedis returns a client on an emptied test database.
// The test is skipped when no Redis answers, unless TEST_REQUIRE_REDIS is truthy.
// TEST_REDIS_DB selects the database (default 15) so a developer's data in DB 0 is never flushed.
func SetupTestRedis(t testing.TB) *redis.Client {
	t.Helper()

	addrs := redisCandidates
	if addr := strings.TrimSpace(os.Getenv("REDIS_ADDR")); addr != "" {
		addrs = []string{addr}
	}
	db := testRedisDB(t)

	var lastErr error
	for _, addr := range addrs {
		client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := client.Ping(ctx).Err()
		if err == nil {
			err = client.FlushDB(ctx).Err()
		}
		cancel()
		if err == nil {
			t.Cleanup(func() { _ = client.Close() })
			return client
		}
		lastErr = err
		_ = client.Close()
	}

	if truthy(os.Getenv("TEST_REQUIRE_REDIS")) {
		t.Fatalf("redis not available for testing: %v", lastErr)
	}
	t.Skipf("redis not available for testing: %v", lastErr)
	return nil
}

func testRedisDB(t testing.TB) int {
	v := os.Getenv("TEST_REDIS_DB")
	if v == "" {
		return defaultTestRedisDB
	}
	db, err := strconv.Atoi(v)
	if err != nil || db < 0 {
		t.Logf("ignoring invalid TEST_REDIS_DB=%q", v)
		return defaultTestRedisDB
	}
	return db
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}
