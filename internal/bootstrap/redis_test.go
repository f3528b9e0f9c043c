package bootstrap

import (
	"context"
	"testing"

	"github.com/kampus/admin-console/config"
	"github.com/kampus/admin-console/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSessionRedis_Direct(t *testing.T) {
	target, err := resolveSessionRedis(config.RedisConfig{URI: "redis://app:pw@cache.internal:6380/2", Password: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, redisModeDirect, target.mode)
	assert.Equal(t, []string{"cache.internal:6380"}, target.opts.Addrs)
	assert.Equal(t, "app", target.opts.Username)
	assert.Equal(t, "pw", target.opts.Password)
	assert.Equal(t, 2, target.opts.DB)
	assert.Equal(t, "cache.internal:6380", target.String())

	target, err = resolveSessionRedis(config.RedisConfig{URI: " localhost:6379 ", Password: "secret", DB: 4})
	require.NoError(t, err)
	assert.Equal(t, []string{"localhost:6379"}, target.opts.Addrs)
	assert.Equal(t, "secret", target.opts.Password)
	assert.Equal(t, 4, target.opts.DB)

	_, err = resolveSessionRedis(config.RedisConfig{URI: " "})
	assert.Error(t, err)

	_, err = resolveSessionRedis(config.RedisConfig{URI: "redis://cache.internal:6380/not-a-db"})
	assert.Error(t, err)
}

func TestResolveSessionRedis_Sentinel(t *testing.T) {
	_, err := resolveSessionRedis(config.RedisConfig{UseSentinel: true, SentinelNodes: []string{" "}, SentinelMasterName: "sessions"})
	require.Error(t, err)
	_, err = resolveSessionRedis(config.RedisConfig{UseSentinel: true, SentinelNodes: []string{"s1:26379"}})
	require.Error(t, err)

	target, err := resolveSessionRedis(config.RedisConfig{
		UseSentinel:        true,
		SentinelNodes:      []string{"s1:26379", " s2:26379 "},
		SentinelMasterName: "sessions",
		SentinelPassword:   "sp",
		DB:                 1,
	})
	require.NoError(t, err)
	assert.Equal(t, redisModeSentinel, target.mode)
	assert.Equal(t, []string{"s1:26379", "s2:26379"}, target.opts.Addrs)
	assert.Equal(t, "sp", target.opts.SentinelPassword)
	assert.Equal(t, "sentinel:sessions", target.String())

	client := target.newClient()
	t.Cleanup(func() { _ = client.Close() })
}

func TestResolveSessionRedis_Cluster(t *testing.T) {
	target, err := resolveSessionRedis(config.RedisConfig{UseCluster: true, ClusterNodes: []string{"n1:7000", "", "n2:7000 "}})
	require.NoError(t, err)
	assert.Equal(t, "cluster:n1:7000,n2:7000", target.String())

	target, err = resolveSessionRedis(config.RedisConfig{UseCluster: true, URI: "rediss://:pw@node-a:7000/3"})
	require.NoError(t, err)
	assert.Equal(t, redisModeCluster, target.mode)
	assert.Equal(t, "cluster:node-a:7000", target.String())
	assert.Equal(t, "pw", target.opts.Password)
	assert.Zero(t, target.opts.DB, "cluster has no database index")
	assert.NotNil(t, target.opts.TLSConfig)

	client := target.newClient()
	t.Cleanup(func() { _ = client.Close() })

	_, err = resolveSessionRedis(config.RedisConfig{UseCluster: true})
	assert.Error(t, err)
}

func TestConnectSessionRedis(t *testing.T) {
	live := testutil.SetupTestRedis(t)
	opts := live.Options()

	client, err := ConnectSessionRedis(context.Background(), config.RedisConfig{URI: opts.Addr, DB: opts.DB}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	assert.NoError(t, client.Ping(context.Background()).Err())
}

func TestConnectSessionRedis_Unreachable(t *testing.T) {
	_, err := ConnectSessionRedis(context.Background(), config.RedisConfig{URI: "127.0.0.1:1"}, nil)
	assert.ErrorContains(t, err, "ping session redis (127.0.0.1:1)")
}
