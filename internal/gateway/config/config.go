// Package config handles configuration for the gateway: defaults, a JSON
// overlay, environment variables and command-line flags, applied in that
// order.
package config

import (
	"errors"
	"os"
	"time"
)

// Config holds runtime settings for the gateway.
//
// Fields:
//   - EndpointAddrHTTP: bind address of the public HTTP API.
//   - AuthServiceAddr: gRPC address of the authentication backend.
//   - AuthServiceTimeout: deadline of every backend call.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default in prod.
//   - TokenIssuer: iss claim of issued tokens.
//   - TokenValidityDuration: lifetime of issued tokens.
//   - RegisterRateLimit / LoginRateLimit: requests per RateLimitWindow per client.
//   - TrustedProxies: proxies whose X-Forwarded-For is honoured when keying clients.
//   - LogFormat / LogLevel: logger backend and verbosity.
//   - OTLPEndpoint: OTLP/HTTP trace collector URL; empty disables tracing.
type Config struct {
	EndpointAddrHTTP      string
	AuthServiceAddr       string
	AuthServiceTimeout    time.Duration
	SecretKey             string
	TokenIssuer           string
	TokenValidityDuration time.Duration
	RegisterRateLimit     int
	LoginRateLimit        int
	RateLimitWindow       time.Duration
	TrustedProxies        []string
	LogFormat             string
	LogLevel              string
	OTLPEndpoint          string
}

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey must be overridden outside development.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":3000"
	c.AuthServiceAddr = "localhost:3001"
	c.AuthServiceTimeout = 5 * time.Second
	c.SecretKey = "secretKey"
	c.TokenIssuer = "authslice-gateway"
	c.TokenValidityDuration = time.Hour
	c.RegisterRateLimit = 3
	c.LoginRateLimit = 5
	c.RateLimitWindow = time.Minute
	c.TrustedProxies = nil
	c.LogFormat = "json"
	c.LogLevel = "info"
	c.OTLPEndpoint = ""
}

// Validate rejects settings the gateway cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.SecretKey == "" {
		errs = append(errs, errors.New("secret key must not be empty"))
	}
	if c.AuthServiceTimeout <= 0 {
		errs = append(errs, errors.New("auth service timeout must be positive"))
	}
	if c.TokenValidityDuration <= 0 {
		errs = append(errs, errors.New("token validity must be positive"))
	}
	if c.RegisterRateLimit <= 0 || c.LoginRateLimit <= 0 || c.RateLimitWindow <= 0 {
		errs = append(errs, errors.New("rate limits and window must be positive"))
	}
	return errors.Join(errs...)
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
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
