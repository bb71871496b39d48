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
	EndpointAddrGRPC    string          `json:"endpoint_addr_grpc"`
	HealthAddrHTTP      *string         `json:"health_addr_http"`
	DatabaseDSN         string          `json:"database_dsn"`
	BcryptCost          int             `json:"bcrypt_cost"`
	StoreTimeout        *timex.Duration `json:"store_timeout"`
	HealthCheckInterval *timex.Duration `json:"health_check_interval"`
	LogFormat           string          `json:"log_format"`
	LogLevel            string          `json:"log_level"`
	OTLPEndpoint        string          `json:"otlp_endpoint"`
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

	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.HealthAddrHTTP != nil {
		config.HealthAddrHTTP = *c.HealthAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.StoreTimeout != nil {
		config.StoreTimeout = c.StoreTimeout.Duration
	}
	if c.HealthCheckInterval != nil {
		config.HealthCheckInterval = c.HealthCheckInterval.Duration
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
