package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/authslice/internal/flagx"
	"github.com/dmitrijs2005/authslice/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations accept "5s" strings
// or integer nanoseconds. Absent fields leave the current value untouched.
type JsonConfig struct {
	EndpointAddrHTTP      string          `json:"endpoint_addr_http"`
	AuthServiceAddr       string          `json:"auth_service_addr"`
	AuthServiceTimeout    *timex.Duration `json:"auth_service_timeout"`
	SecretKey             string          `json:"secret_key"`
	TokenIssuer           string          `json:"token_issuer"`
	TokenValidityDuration *timex.Duration `json:"token_validity_duration"`
	RegisterRateLimit     int             `json:"register_rate_limit"`
	LoginRateLimit        int             `json:"login_rate_limit"`
	RateLimitWindow       *timex.Duration `json:"rate_limit_window"`
	TrustedProxies        []string        `json:"trusted_proxies"`
	LogFormat             string          `json:"log_format"`
	LogLevel              string          `json:"log_level"`
	OTLPEndpoint          string          `json:"otlp_endpoint"`
}

// parseJSON overlays values from the file named by -c / -config, if any.
func parseJSON(config *Config, args []string) error {

	jsonConfigFile := flagx.ConfigFilePath(args)

	// nothing to load
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", jsonConfigFile, err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.AuthServiceAddr != "" {
		config.AuthServiceAddr = c.AuthServiceAddr
	}
	if c.AuthServiceTimeout != nil {
		config.AuthServiceTimeout = c.AuthServiceTimeout.Duration
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenIssuer != "" {
		config.TokenIssuer = c.TokenIssuer
	}
	if c.TokenValidityDuration != nil {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.RegisterRateLimit != 0 {
		config.RegisterRateLimit = c.RegisterRateLimit
	}
	if c.LoginRateLimit != 0 {
		config.LoginRateLimit = c.LoginRateLimit
	}
	if c.RateLimitWindow != nil {
		config.RateLimitWindow = c.RateLimitWindow.Duration
	}
	if c.TrustedProxies != nil {
		config.TrustedProxies = c.TrustedProxies
	}
	if c.LogFormat != "" {
		config.LogFormat = c.LogFormat
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.OTLPEndpoint != "" {
		config.OTLPEndpoint = c.OTLPEndpoint
	}

	return nil
}
