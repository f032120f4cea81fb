package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/gocoinbase/internal/logging"
)

const (
	DefaultBaseURL    = "https://api.coinbase.com"
	DefaultTimeout    = 3 * time.Second
	MinTimeout        = time.Second
	DefaultMaxRetries = 2
	DefaultWorkers    = 4
)

// Environment variables read by Load, highest precedence.
const (
	EnvAPIKey     = "COINBASE_API_KEY"
	EnvSecret     = "COINBASE_API_SECRET"
	EnvAPIVersion = "COINBASE_API_VERSION"
	EnvBaseURL    = "COINBASE_BASE_URL"
	EnvTimeout    = "COINBASE_TIMEOUT"
)

// Paths holds the API resource paths, relative to BaseURL.
type Paths struct {
	User          string `yaml:"user"`
	UserAuth      string `yaml:"user_auth"`
	Users         string `yaml:"users"`
	Accounts      string `yaml:"accounts"`
	Currencies    string `yaml:"currencies"`
	ExchangeRates string `yaml:"exchange_rates"`
	Prices        string `yaml:"prices"`
	Time          string `yaml:"time"`
}

type Config struct {
	APIKey          string         `yaml:"api_key"`
	Secret          string         `yaml:"secret"`
	APIVersion      string         `yaml:"api_version"`
	BaseURL         string         `yaml:"base_url"`
	Timeout         time.Duration  `yaml:"timeout"`
	FollowRedirects bool           `yaml:"follow_redirects"`
	MaxRetries      uint64         `yaml:"max_retries"`
	Workers         int            `yaml:"workers"`
	Log             logging.Config `yaml:"log"`
	Paths           Paths          `yaml:"paths"`
}

func Default() Config {
	return Config{
		BaseURL:         DefaultBaseURL,
		Timeout:         DefaultTimeout,
		FollowRedirects: true,
		MaxRetries:      DefaultMaxRetries,
		Workers:         DefaultWorkers,
		Log:             logging.NewDefaultConfig(),
		Paths: Paths{
			User:          "/v2/user",
			UserAuth:      "/v2/user/auth",
			Users:         "/v2/users",
			Accounts:      "/v2/accounts",
			Currencies:    "/v2/currencies",
			ExchangeRates: "/v2/exchange-rates",
			Prices:        "/v2/prices",
			Time:          "/v2/time",
		},
	}
}

// Load starts from Default, overlays the YAML file at path (skipped when path
// is empty), loads a .env file from the working directory if there is one and
// finally applies the COINBASE_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAPIKey); ok {
		c.APIKey = v
	}
	if v, ok := lookup(EnvSecret); ok {
		c.Secret = v
	}
	if v, ok := lookup(EnvAPIVersion); ok {
		c.APIVersion = v
	}
	if v, ok := lookup(EnvBaseURL); ok {
		c.BaseURL = v
	}
	if v, ok := lookup(EnvTimeout); ok {
		d, err := parseTimeout(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		c.Timeout = d
	}
	return nil
}

// parseTimeout accepts a Go duration ("5s") or a bare number of seconds.
func parseTimeout(v string) (time.Duration, error) {
	v = strings.TrimSpace(v)
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(v)
}

// Normalize fixes values the client cannot work with. It reports whether the
// timeout had to be replaced so the caller can warn about it.
func (c *Config) Normalize() (timeoutReplaced bool) {
	if c.Timeout < MinTimeout {
		c.Timeout = DefaultTimeout
		timeoutReplaced = true
	}
	if c.Workers < 1 {
		c.Workers = DefaultWorkers
	}
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	return timeoutReplaced
}
