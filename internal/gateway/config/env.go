package config

import (
	"errors"
	"os"
	"strings"

	"github.com/dmitrijs2005/authslice/internal/envx"
)

// Environment variables recognized by the gateway.
const (
	EnvHTTPAddress        = "GATEWAY_HTTP_ADDRESS"
	EnvAuthServiceAddress = "AUTH_SERVICE_ADDRESS"
	EnvAuthServiceTimeout = "AUTH_SERVICE_TIMEOUT"
	EnvSecretKey          = "JWT_SECRET"
	EnvTokenIssuer        = "JWT_ISSUER"
	EnvTokenValidity      = "JWT_EXPIRES_IN"
	EnvRegisterRateLimit  = "REGISTER_RATE_LIMIT"
	EnvLoginRateLimit     = "LOGIN_RATE_LIMIT"
	EnvRateLimitWindow    = "RATE_LIMIT_WINDOW"
	EnvTrustedProxies     = "TRUSTED_PROXIES"
	EnvLogFormat          = "LOG_FORMAT"
	EnvLogLevel           = "LOG_LEVEL"
	EnvOTLPEndpoint       = "OTEL_EXPORTER_OTLP_ENDPOINT"
)

// splitList parses a comma-separated list, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// parseEnv overlays values from the environment. A .env file in the working
// directory is loaded first; real environment variables take precedence.
func parseEnv(config *Config) error {
	if err := envx.LoadDotEnv(".env"); err != nil {
		return err
	}

	envx.String(&config.EndpointAddrHTTP, EnvHTTPAddress)
	envx.String(&config.AuthServiceAddr, EnvAuthServiceAddress)
	envx.String(&config.SecretKey, EnvSecretKey)
	envx.String(&config.TokenIssuer, EnvTokenIssuer)
	envx.String(&config.LogFormat, EnvLogFormat)
	envx.String(&config.LogLevel, EnvLogLevel)
	envx.String(&config.OTLPEndpoint, EnvOTLPEndpoint)
	if v, ok := os.LookupEnv(EnvTrustedProxies); ok {
		config.TrustedProxies = splitList(v)
	}

	return errors.Join(
		envx.Duration(&config.AuthServiceTimeout, EnvAuthServiceTimeout),
		envx.Duration(&config.TokenValidityDuration, EnvTokenValidity),
		envx.Int(&config.RegisterRateLimit, EnvRegisterRateLimit),
		envx.Int(&config.LoginRateLimit, EnvLoginRateLimit),
		envx.Duration(&config.RateLimitWindow, EnvRateLimitWindow),
	)
}
