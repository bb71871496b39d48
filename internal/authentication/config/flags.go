package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/authslice/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     gRPC bind address (e.g. ":3001")
//	-h string     HTTP health bind address (e.g. ":3002")
//	-d string     store DSN
//	-b int        bcrypt cost
//	-t duration   store call timeout (e.g. "3s")
//	-i duration   health check interval
//	-log-format   json, text or console
//	-log-level    debug, info, warn or error
//	-otlp string  OTLP/HTTP trace endpoint
//
// os.Args is first filtered to the flags handled here with flagx.FilterArgs,
// so -c / -config and unknown flags are ignored.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-h", "-d", "-b", "-t", "-i", "-log-format", "-log-level", "-otlp"})

	fs := flag.NewFlagSet("authentication", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run gRPC server")
	fs.StringVar(&config.HealthAddrHTTP, "h", config.HealthAddrHTTP, "address and port of HTTP health endpoint")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "store DSN")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")
	fs.DurationVar(&config.StoreTimeout, "t", config.StoreTimeout, "store call timeout")
	fs.DurationVar(&config.HealthCheckInterval, "i", config.HealthCheckInterval, "health check interval")
	fs.StringVar(&config.LogFormat, "log-format", config.LogFormat, "log format: json, text or console")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level")
	fs.StringVar(&config.OTLPEndpoint, "otlp", config.OTLPEndpoint, "OTLP/HTTP trace endpoint")

	return fs.Parse(args)
}
