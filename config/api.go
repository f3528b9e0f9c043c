package config

import (
	"strings"
	"time"
)

// APIConfig configures the client for the Kampüs REST API.
type APIConfig struct {
	// BaseURL is the API root, e.g. "https://api.kampus.com".
	BaseURL string `env:"BASE_URL,required"`

	// Timeout bounds each API request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	if a.Timeout <= 0 {
		a.Timeout = 15 * time.Second
	}
}
