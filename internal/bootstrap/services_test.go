package bootstrap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/kampus/admin-console/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAppConfig(apiURL string) *config.AppConfig {
	cfg := &config.AppConfig{
		API:     config.APIConfig{BaseURL: apiURL, Timeout: time.Second},
		Session: config.SessionConfig{TTL: time.Hour, Prefix: "test-session:", CookieName: "session_id"},
	}
	cfg.Sanitize()
	return cfg
}

func TestNewServices_Validation(t *testing.T) {
	_, err := NewServices(nil)
	require.Error(t, err)

	_, err = NewServices(&ServiceDeps{Config: testAppConfig("http://api.local")})
	require.Error(t, err, "redis client is required")

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	t.Cleanup(func() { _ = client.Close() })
	_, err = NewServices(&ServiceDeps{Config: testAppConfig("ftp://nope"), RedisClient: client})
	require.Error(t, err)
}

func TestNewServices_WiresEverything(t *testing.T) {
	// The client is never dialed: construction does not touch Redis.
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	t.Cleanup(func() { _ = client.Close() })

	svcs, err := NewServices(&ServiceDeps{Config: testAppConfig("http://api.local/"), RedisClient: client})
	require.NoError(t, err)
	assert.NotNil(t, svcs.Auth)
	assert.NotNil(t, svcs.Customers)
	assert.NotNil(t, svcs.Codes)
	assert.NotNil(t, svcs.Access)
	assert.NotNil(t, svcs.Reports)
	assert.NotNil(t, svcs.Sessions)
	assert.Equal(t, "http://api.local", svcs.API.BaseURL())
	assert.Equal(t, time.Hour, svcs.Auth.TTL())
}

func TestBuildHTTPHandler_Healthz(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	t.Cleanup(func() { _ = client.Close() })

	cfg := testAppConfig("http://api.local")
	cfg.HTTP.CompressionEnabled = true
	cfg.HTTP.CompressionLevel = 5
	svcs, err := NewServices(&ServiceDeps{Config: cfg, RedisClient: client})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := BuildHTTPHandler(svcs, cfg, logger)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWaitForShutdown_ServiceError(t *testing.T) {
	errCh := make(chan error, 1)
	errCh <- errors.New("listen failed")
	ctx, cancel := context.WithCancel(context.Background())

	err := waitForShutdown(shutdownConfig{
		ctx:    ctx,
		cancel: cancel,
		quit:   make(chan os.Signal),
		errCh:  errCh,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.EqualError(t, err, "listen failed")
	assert.Error(t, ctx.Err(), "context is canceled after stop")
}

func TestWaitForShutdown_Signal(t *testing.T) {
	quit := make(chan os.Signal, 1)
	quit <- os.Interrupt
	srv := &http.Server{Addr: "127.0.0.1:0"}
	ctx, cancel := context.WithCancel(context.Background())

	err := waitForShutdown(shutdownConfig{
		ctx:        ctx,
		cancel:     cancel,
		quit:       quit,
		errCh:      make(chan error),
		httpServer: srv,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
}

func TestBuildMetrics(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Nil(t, buildMetrics(config.MetricsConfig{Enabled: false, StatsdAddress: "127.0.0.1:8125"}, config.EnvTest, logger))

	m := buildMetrics(config.MetricsConfig{Enabled: true, StatsdAddress: "127.0.0.1:8125", Prefix: "kampus_admin"}, config.EnvTest, logger)
	require.NotNil(t, m)
	t.Cleanup(func() { _ = m.Close() })
	assert.True(t, m.Enabled())
	assert.Equal(t, "kampus_admin.api.request:1|c|#env:test", m.Line("api.request", "1", "c", nil))
}
