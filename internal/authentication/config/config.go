// Package config handles configuration for the authentication backend:
// defaults, a JSON overlay, environment variables and command-line flags,
// applied in that order.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the authentication backend.
//
// Fields:
//   - EndpointAddrGRPC: bind address of the Users gRPC service.
//   - HealthAddrHTTP: bind address of the HTTP /health listener; empty disables it.
//   - DatabaseDSN: store DSN. The scheme picks the store (mongodb, postgres, memory).
//   - BcryptCost: bcrypt work factor for new password hashes.
//   - StoreTimeout: upper bound of a single store call.
//   - HealthCheckInterval: how often the store is pinged for gRPC health.
//   - LogFormat / LogLevel: logger backend and verbosity.
//   - OTLPEndpoint: OTLP/HTTP trace collector URL; empty disables tracing.
type Config struct {
	EndpointAddrGRPC    string
	HealthAddrHTTP      string
	DatabaseDSN         string
	BcryptCost          int
	StoreTimeout        time.Duration
	HealthCheckInterval time.Duration
	LogFormat           string
	LogLevel            string
	OTLPEndpoint        string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":3001"
	c.HealthAddrHTTP = ":3002"
	c.DatabaseDSN = "mongodb://localhost:27017/authentication"
	c.BcryptCost = 10
	c.StoreTimeout = 3 * time.Second
	c.HealthCheckInterval = 10 * time.Second
	c.LogFormat = "json"
	c.LogLevel = "info"
	c.OTLPEndpoint = ""
}

// LoadConfig builds a Config from defaults, then the optional JSON file,
// then the environment (seeded from .env) and finally command-line flags.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
