package config

import (
	"fmt"
	"strings"
)

// AppEnv represents the runtime environment of the console.
type AppEnv string

const (
	// EnvDevelopment reloads templates from disk and logs at debug level.
	EnvDevelopment AppEnv = "development"
	// EnvProduction serves embedded templates.
	EnvProduction AppEnv = "production"
	// EnvTest is used by integration tests.
	EnvTest AppEnv = "test"
)

// UnmarshalText implements encoding.TextUnmarshaler for AppEnv.
// "dev" and "prod" are accepted as shorthands.
func (e *AppEnv) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "development", "dev":
		*e = EnvDevelopment
	case "production", "prod", "":
		*e = EnvProduction
	case "test":
		*e = EnvTest
	default:
		return fmt.Errorf("invalid AppEnv: %q (valid options: development, production, test)", v)
	}
	return nil
}
