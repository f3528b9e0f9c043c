package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kampus/admin-console/config"
	"github.com/kampus/admin-console/internal/adapters/kampusapi"
	redisadapter "github.com/kampus/admin-console/internal/adapters/redis"
	"github.com/kampus/admin-console/internal/observability/statsd"
	"github.com/kampus/admin-console/internal/ports"
	"github.com/kampus/admin-console/internal/service"
	"github.com/redis/go-redis/v9"
)

const shutdownWaitTimeout = 10 * time.Second

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth      *service.AuthService
	Customers *service.CustomerService
	Codes     *service.PartnershipCodeService
	Access    *service.AccessService
	Reports   *service.ReportService
	// Sessions is exposed for the admin CLI, which lists sessions directly.
	Sessions *redisadapter.SessionStore
	API      *kampusapi.Client
	// Metrics is nil when metrics are disabled.
	Metrics *statsd.Client
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	// Transport overrides the API client's round tripper (tests).
	Transport http.RoundTripper
	Logger    *slog.Logger
}

// NewServices builds the API client, session store and domain services.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, errors.New("service deps with config are required")
	}
	if deps.RedisClient == nil {
		return ServiceContainer{}, errors.New("redis client is required for sessions")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	metrics := buildMetrics(cfg.Metrics, cfg.Env, logger)
	apiCfg := kampusapi.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		Transport: deps.Transport,
		Logger:    logger.With("component", "kampusapi"),
	}
	if metrics != nil {
		apiCfg.Metrics = metrics
	}
	api, err := kampusapi.New(apiCfg)
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build api client: %w", err)
	}

	sessions := redisadapter.NewSessionStoreWithPrefix(deps.RedisClient, cfg.Session.Prefix)
	container := buildDomainServices(api, sessions, cfg, logger)
	container.Metrics = metrics
	return container, nil
}

// buildMetrics returns a StatsD client, or nil when metrics are off or the agent is unreachable.
func buildMetrics(cfg config.MetricsConfig, appEnv config.AppEnv, logger *slog.Logger) *statsd.Client {
	if !cfg.IsEnabled() {
		return nil
	}
	client, err := statsd.NewClient(statsd.Config{
		Enabled: true,
		Address: cfg.StatsdAddress,
		Prefix:  cfg.Prefix,
		Tags:    map[string]string{"env": string(appEnv)},
		Logger:  logger,
	})
	if err != nil {
		logger.Error("failed to initialise statsd client", "error", err)
		return nil
	}
	return client
}

// buildDomainServices wires business services on top of the API client and session store.
func buildDomainServices(
	api *kampusapi.Client,
	sessions *redisadapter.SessionStore,
	cfg *config.AppConfig,
	logger *slog.Logger,
) ServiceContainer {
	var authn ports.Authenticator = api
	return ServiceContainer{
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Authenticator: authn,
			Sessions:      sessions,
			Config:        service.AuthConfig{TTL: cfg.Session.TTL, Logger: logger},
		}),
		Customers: service.NewCustomerService(service.CustomerServiceOptions{Customers: api, Codes: api}),
		Codes:     service.NewPartnershipCodeService(api),
		Access: service.NewAccessService(service.AccessServiceOptions{
			Users:     api,
			Protected: cfg.Session.ProtectedAccounts,
			Logger:    logger,
		}),
		Reports:  service.NewReportService(api),
		Sessions: sessions,
		API:      api,
	}
}

// ServiceOrchestrationConfig contains what RunServicesWithShutdown needs.
type ServiceOrchestrationConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// RunServicesWithShutdown starts the HTTP server and blocks until a shutdown
// signal is received or the server fails.
func RunServicesWithShutdown(cfg *ServiceOrchestrationConfig) error {
	if cfg == nil {
		return errors.New("service orchestration config is required")
	}
	if cfg.Config == nil {
		return errors.New("service orchestration config missing AppConfig")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	defer func() {
		if err := cfg.Services.Metrics.Close(); err != nil {
			logger.Warn("close statsd client", "error", err)
		}
	}()

	serviceCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	server := StartHTTPServer(&HTTPServerConfig{
		Config:   cfg.Config,
		Services: cfg.Services,
		Logger:   logger,
		ErrCh:    errCh,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	return waitForShutdown(shutdownConfig{
		ctx:        serviceCtx,
		cancel:     cancel,
		quit:       quit,
		errCh:      errCh,
		httpServer: server,
		logger:     logger,
	})
}

// shutdownConfig contains dependencies for graceful shutdown.
type shutdownConfig struct {
	ctx        context.Context
	cancel     context.CancelFunc
	quit       <-chan os.Signal
	errCh      <-chan error
	httpServer *http.Server
	logger     *slog.Logger
}

// waitForShutdown waits for shutdown signal or server error.
func waitForShutdown(cfg shutdownConfig) error {
	select {
	case <-cfg.quit:
		cfg.logger.Info("shutting down services...")
		return gracefulStop(cfg)
	case err := <-cfg.errCh:
		cfg.logger.Error("service error", "error", err)
		if stopErr := gracefulStop(cfg); stopErr != nil {
			cfg.logger.Error("graceful stop failed", "error", stopErr)
		}
		return err
	}
}

// gracefulStop shuts the HTTP server down, then cancels the service context.
func gracefulStop(cfg shutdownConfig) error {
	defer cfg.cancel()
	return ShutdownHTTPServer(ShutdownConfig{
		Context: cfg.ctx,
		Server:  cfg.httpServer,
		Logger:  cfg.logger,
	})
}
