package config

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - api.go: Kampüs REST API client configuration
//   - env.go: Runtime environment
//   - http.go: HTTP server configuration
//   - metrics.go: StatsD metrics
//   - redis.go: Redis configuration
//   - session.go: Session and protected account configuration
type AppConfig struct {
	// Env selects development or production behavior (template hot reload, etc.).
	Env AppEnv `env:"APP_ENV" envDefault:"production"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Remote API configuration
	API APIConfig `envPrefix:"API_"`

	// Session configuration
	Session SessionConfig `envPrefix:"SESSION_"`

	// Redis configuration
	Redis RedisConfig `envPrefix:"REDIS_"`

	// Metrics configuration
	Metrics MetricsConfig `envPrefix:"METRICS_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.API.Sanitize()
	c.Session.Sanitize()
	c.Metrics.Sanitize()
}

// IsDev reports whether the console runs in development mode.
func (c *AppConfig) IsDev() bool {
	return c.Env == EnvDevelopment
}
