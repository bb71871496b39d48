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
//	-a string        HTTP bind address (e.g. ":3000")
//	-b string        authentication backend address (e.g. "localhost:3001")
//	-t duration      backend call timeout (e.g. "5s")
//	-s string        JWT HMAC secret key
//	-e duration      token validity (e.g. "1h")
//	-trusted-proxies comma-separated proxy addresses or CIDRs
//	-log-format      json, text or console
//	-log-level       debug, info, warn or error
//	-otlp string     OTLP/HTTP trace endpoint
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-b", "-t", "-s", "-e", "-trusted-proxies", "-log-format", "-log-level", "-otlp"})

	fs := flag.NewFlagSet("gateway", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run HTTP server")
	fs.StringVar(&config.AuthServiceAddr, "b", config.AuthServiceAddr, "authentication backend address")
	fs.DurationVar(&config.AuthServiceTimeout, "t", config.AuthServiceTimeout, "backend call timeout")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.TokenValidityDuration, "e", config.TokenValidityDuration, "token validity")
	fs.StringVar(&config.LogFormat, "log-format", config.LogFormat, "log format: json, text or console")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level")
	fs.StringVar(&config.OTLPEndpoint, "otlp", config.OTLPEndpoint, "OTLP/HTTP trace endpoint")
	fs.Func("trusted-proxies", "comma-separated trusted proxies", func(v string) error {
		config.TrustedProxies = splitList(v)
		return nil
	})

	return fs.Parse(args)
}
