package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":3001", c.EndpointAddrGRPC)
	assert.Equal(t, ":3002", c.HealthAddrHTTP)
	assert.Equal(t, "mongodb://localhost:27017/authentication", c.DatabaseDSN)
	assert.Equal(t, 10, c.BcryptCost)
	assert.Equal(t, 3*time.Second, c.StoreTimeout)
	assert.Equal(t, 10*time.Second, c.HealthCheckInterval)
	assert.Equal(t, "json", c.LogFormat)
	assert.Equal(t, "info", c.LogLevel)
	assert.Empty(t, c.OTLPEndpoint)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Precedence(t *testing.T) {
	t.Chdir(t.TempDir())

	path := writeFile(t, "cfg.json", `{
		"endpoint_addr_grpc": ":4001",
		"database_dsn": "memory://",
		"store_timeout": "1s",
		"health_check_interval": 2000000000,
		"log_level": "debug"
	}`)
	t.Setenv(EnvDatabaseDSN, "postgres://localhost/auth")
	t.Setenv(EnvBcryptCost, "12")

	cfg, err := load([]string{"-config", path, "-a", ":5001", "-unknown", "x"})
	require.NoError(t, err)

	assert.Equal(t, ":5001", cfg.EndpointAddrGRPC, "flag wins over json")
	assert.Equal(t, "postgres://localhost/auth", cfg.DatabaseDSN, "env wins over json")
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, time.Second, cfg.StoreTimeout)
	assert.Equal(t, 2*time.Second, cfg.HealthCheckInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":3002", cfg.HealthAddrHTTP, "untouched fields keep defaults")
}

func TestLoad_JSONCanDisableHealthListener(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeFile(t, "cfg.json", `{"health_addr_http": ""}`)

	cfg, err := load([]string{"-c", path})
	require.NoError(t, err)
	assert.Empty(t, cfg.HealthAddrHTTP)
}

func TestLoad_MongoURIFallback(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvMongoURI, "mongodb://db:27017/users")

	cfg, err := load(nil)
	require.NoError(t, err)
	assert.Equal(t, "mongodb://db:27017/users", cfg.DatabaseDSN)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_FORMAT=console\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv(EnvLogFormat) })

	cfg, err := load(nil)
	require.NoError(t, err)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoad_Errors(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := load([]string{"-c", filepath.Join(t.TempDir(), "missing.json")})
	assert.Error(t, err)

	bad := writeFile(t, "bad.json", `{"store_timeout": "soon"}`)
	_, err = load([]string{"-c", bad})
	assert.Error(t, err)

	_, err = load([]string{"-t", "soon"})
	assert.Error(t, err)

	t.Setenv(EnvStoreTimeout, "soon")
	_, err = load(nil)
	assert.Error(t, err)
}
