package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kampus/admin-console/config"
	"github.com/redis/go-redis/v9"
)

const sessionRedisPingTimeout = 5 * time.Second

type redisMode string

const (
	redisModeDirect   redisMode = "direct"
	redisModeSentinel redisMode = "sentinel"
	redisModeCluster  redisMode = "cluster"
)

// sessionRedisTarget is a resolved connection plan for the session store.
type sessionRedisTarget struct {
	mode redisMode
	opts redis.UniversalOptions
}

// ConnectSessionRedis opens the Redis deployment holding console sessions and
// pings it so a bad address fails at startup instead of on the first login.
//
//nolint:ireturn // sessions work against single, sentinel and cluster clients alike.
func ConnectSessionRedis(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (redis.UniversalClient, error) {
	target, err := resolveSessionRedis(cfg)
	if err != nil {
		return nil, err
	}
	client := target.newClient()

	pingCtx, cancel := context.WithTimeout(ctx, sessionRedisPingTimeout)
	defer cancel()
	if pingErr := client.Ping(pingCtx).Err(); pingErr != nil {
		if closeErr := client.Close(); closeErr != nil {
			pingErr = errors.Join(pingErr, fmt.Errorf("close redis client: %w", closeErr))
		}
		return nil, fmt.Errorf("ping session redis (%s): %w", target, pingErr)
	}

	if logger != nil {
		logger.InfoContext(ctx, "session store connected", "mode", string(target.mode), "addr", target.String())
	}
	return client, nil
}

func resolveSessionRedis(cfg config.RedisConfig) (sessionRedisTarget, error) {
	switch {
	case cfg.UseCluster:
		return clusterTarget(cfg)
	case cfg.UseSentinel:
		return sentinelTarget(cfg)
	default:
		return directTarget(cfg)
	}
}

// directTarget accepts either a redis:// URL or a bare host:port.
func directTarget(cfg config.RedisConfig) (sessionRedisTarget, error) {
	uri := strings.TrimSpace(cfg.URI)
	if uri == "" {
		return sessionRedisTarget{}, errors.New("redis: REDIS_URI is required")
	}
	t := sessionRedisTarget{
		mode: redisModeDirect,
		opts: redis.UniversalOptions{Addrs: []string{uri}, Password: cfg.Password, DB: cfg.DB},
	}
	if !strings.HasPrefix(uri, "redis://") && !strings.HasPrefix(uri, "rediss://") {
		return t, nil
	}

	parsed, err := redis.ParseURL(uri)
	if err != nil {
		return sessionRedisTarget{}, fmt.Errorf("redis: parse REDIS_URI: %w", err)
	}
	t.opts.Addrs = []string{parsed.Addr}
	t.opts.Username = parsed.Username
	t.opts.DB = parsed.DB
	t.opts.TLSConfig = parsed.TLSConfig
	if parsed.Password != "" {
		t.opts.Password = parsed.Password
	}
	return t, nil
}

// clusterTarget uses REDIS_CLUSTER_NODES, or the single REDIS_URI node when none are listed.
func clusterTarget(cfg config.RedisConfig) (sessionRedisTarget, error) {
	if nodes := nonBlank(cfg.ClusterNodes); len(nodes) > 0 {
		return sessionRedisTarget{
			mode: redisModeCluster,
			opts: redis.UniversalOptions{Addrs: nodes, Password: cfg.Password},
		}, nil
	}
	if strings.TrimSpace(cfg.URI) == "" {
		return sessionRedisTarget{}, errors.New("redis: cluster mode needs REDIS_CLUSTER_NODES or REDIS_URI")
	}
	t, err := directTarget(cfg)
	if err != nil {
		return sessionRedisTarget{}, err
	}
	t.mode = redisModeCluster
	t.opts.DB = 0
	return t, nil
}

func sentinelTarget(cfg config.RedisConfig) (sessionRedisTarget, error) {
	nodes := nonBlank(cfg.SentinelNodes)
	if len(nodes) == 0 {
		return sessionRedisTarget{}, errors.New("redis: sentinel mode needs REDIS_SENTINEL_NODES")
	}
	master := strings.TrimSpace(cfg.SentinelMasterName)
	if master == "" {
		return sessionRedisTarget{}, errors.New("redis: sentinel mode needs REDIS_SENTINEL_MASTER_NAME")
	}
	return sessionRedisTarget{
		mode: redisModeSentinel,
		opts: redis.UniversalOptions{
			Addrs:            nodes,
			MasterName:       master,
			Password:         cfg.Password,
			SentinelPassword: cfg.SentinelPassword,
			DB:               cfg.DB,
		},
	}, nil
}

//nolint:ireturn // see ConnectSessionRedis.
func (t sessionRedisTarget) newClient() redis.UniversalClient {
	switch t.mode {
	case redisModeCluster:
		return redis.NewClusterClient(t.opts.Cluster())
	case redisModeSentinel:
		return redis.NewFailoverClient(t.opts.Failover())
	default:
		return redis.NewClient(t.opts.Simple())
	}
}

// String describes the target for logs. Credentials never appear in it.
func (t sessionRedisTarget) String() string {
	switch t.mode {
	case redisModeCluster:
		return "cluster:" + strings.Join(t.opts.Addrs, ",")
	case redisModeSentinel:
		return "sentinel:" + t.opts.MasterName
	default:
		return t.opts.Addrs[0]
	}
}

func nonBlank(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
