package config

import (
	"errors"

	"github.com/dmitrijs2005/authslice/internal/envx"
)

// Environment variables recognized by the backend.
const (
	EnvGRPCAddress         = "AUTH_GRPC_ADDRESS"
	EnvHealthAddress       = "AUTH_HEALTH_ADDRESS"
	EnvDatabaseDSN         = "DATABASE_DSN"
	EnvMongoURI            = "MONGODB_URI"
	EnvBcryptCost          = "BCRYPT_COST"
	EnvStoreTimeout        = "STORE_TIMEOUT"
	EnvHealthCheckInterval = "HEALTH_CHECK_INTERVAL"
	EnvLogFormat           = "LOG_FORMAT"
	EnvLogLevel            = "LOG_LEVEL"
	EnvOTLPEndpoint        = "OTEL_EXPORTER_OTLP_ENDPOINT"
)

// parseEnv overlays values from the environment. A .env file in the working
// directory is loaded first; real environment variables take precedence.
// DATABASE_DSN wins over MONGODB_URI when both are set.
func parseEnv(config *Config) error {
	if err := envx.LoadDotEnv(".env"); err != nil {
		return err
	}

	envx.String(&config.EndpointAddrGRPC, EnvGRPCAddress)
	envx.String(&config.HealthAddrHTTP, EnvHealthAddress)
	envx.String(&config.DatabaseDSN, EnvMongoURI)
	envx.String(&config.DatabaseDSN, EnvDatabaseDSN)
	envx.String(&config.LogFormat, EnvLogFormat)
	envx.String(&config.LogLevel, EnvLogLevel)
	envx.String(&config.OTLPEndpoint, EnvOTLPEndpoint)

	return errors.Join(
		envx.Int(&config.BcryptCost, EnvBcryptCost),
		envx.Duration(&config.StoreTimeout, EnvStoreTimeout),
		envx.Duration(&config.HealthCheckInterval, EnvHealthCheckInterval),
	)
}
