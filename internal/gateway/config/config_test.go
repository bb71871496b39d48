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

	assert.Equal(t, ":3000", c.EndpointAddrHTTP)
	assert.Equal(t, "localhost:3001", c.AuthServiceAddr)
	assert.Equal(t, 5*time.Second, c.AuthServiceTimeout)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, time.Hour, c.TokenValidityDuration)
	assert.Equal(t, 3, c.RegisterRateLimit)
	assert.Equal(t, 5, c.LoginRateLimit)
	assert.Equal(t, time.Minute, c.RateLimitWindow)
	assert.NoError(t, c.Validate())
}

func TestLoad_Precedence(t *testing.T) {
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "gw.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"endpoint_addr_http": ":8080",
		"auth_service_addr": "auth:3001",
		"auth_service_timeout": "2s",
		"secret_key": "from-json",
		"login_rate_limit": 10,
		"trusted_proxies": ["10.0.0.0/8"]
	}`), 0o600))

	t.Setenv(EnvSecretKey, "from-env")
	t.Setenv(EnvRateLimitWindow, "30s")

	cfg, err := load([]string{"-c", path, "-t", "4s", "-trusted-proxies", "127.0.0.1, 192.168.0.0/16"})
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
	assert.Equal(t, "auth:3001", cfg.AuthServiceAddr)
	assert.Equal(t, 4*time.Second, cfg.AuthServiceTimeout, "flag wins over json")
	assert.Equal(t, "from-env", cfg.SecretKey, "env wins over json")
	assert.Equal(t, 10, cfg.LoginRateLimit)
	assert.Equal(t, 3, cfg.RegisterRateLimit)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, []string{"127.0.0.1", "192.168.0.0/16"}, cfg.TrustedProxies)
}

func TestLoad_TrustedProxiesFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvTrustedProxies, "10.1.1.1,,10.2.2.2")

	cfg, err := load(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"10.1.1.1", "10.2.2.2"}, cfg.TrustedProxies)
}

func TestLoad_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("zero timeout", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gw.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"auth_service_timeout": 0}`), 0o600))
		_, err := load([]string{"-c", path})
		assert.Error(t, err)
	})

	t.Run("bad env duration", func(t *testing.T) {
		t.Setenv(EnvAuthServiceTimeout, "five")
		_, err := load(nil)
		assert.Error(t, err)
	})

	t.Run("bad env int", func(t *testing.T) {
		t.Setenv(EnvLoginRateLimit, "many")
		_, err := load(nil)
		assert.Error(t, err)
	})
}
