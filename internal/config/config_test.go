package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, "https://api.coinbase.com", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, Paths{
		User:          "/v2/user",
		UserAuth:      "/v2/user/auth",
		Users:         "/v2/users",
		Accounts:      "/v2/accounts",
		Currencies:    "/v2/currencies",
		ExchangeRates: "/v2/exchange-rates",
		Prices:        "/v2/prices",
		Time:          "/v2/time",
	}, cfg.Paths)
	assert.True(t, cfg.FollowRedirects)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Timeout = 500 * time.Millisecond
	cfg.Workers = 0
	cfg.BaseURL = "http://localhost:8080/"

	assert.True(t, cfg.Normalize())
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)

	cfg.Timeout = 10 * time.Second
	assert.False(t, cfg.Normalize())
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		EnvAPIKey:     "key",
		EnvSecret:     "secret",
		EnvAPIVersion: "2021-02-03",
		EnvTimeout:    "7",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	cfg := Default()
	require.NoError(t, cfg.applyEnv(lookup))
	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, "secret", cfg.Secret)
	assert.Equal(t, "2021-02-03", cfg.APIVersion)
	assert.Equal(t, 7*time.Second, cfg.Timeout)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)

	env[EnvTimeout] = "1m30s"
	require.NoError(t, cfg.applyEnv(lookup))
	assert.Equal(t, 90*time.Second, cfg.Timeout)

	env[EnvTimeout] = "soon"
	assert.Error(t, cfg.applyEnv(lookup))
}

// Not parallel: Load reads the process environment.
func TestLoad_YAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cbctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api_key: from-file
base_url: http://example.test
workers: 8
log:
  level: debug
paths:
  time: /v3/time
`), 0o600))

	t.Setenv(EnvAPIKey, "from-env")
	t.Chdir(dir)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, "http://example.test", cfg.BaseURL)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/v3/time", cfg.Paths.Time)
	assert.Equal(t, "/v2/accounts", cfg.Paths.Accounts, "unset paths keep their defaults")
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
