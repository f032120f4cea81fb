package coinbase

import (
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"resty.dev/v3"

	"github.com/ib-77/gocoinbase/internal/config"
	"github.com/ib-77/gocoinbase/internal/logging"
	"github.com/ib-77/gocoinbase/pkg/coinbase/auth"
)

// Config is the client configuration; see DefaultConfig and LoadConfig.
type Config = config.Config

func DefaultConfig() Config {
	return config.Default()
}

// LoadConfig reads the YAML file at path (optional), a .env file and the
// COINBASE_* environment variables on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	return config.Load(path)
}

type Client struct {
	cfg        Config
	http       *resty.Client
	signer     auth.Signer
	log        *logging.Logger
	newBackOff func() backoff.BackOff

	data     *DataService
	user     *UserService
	accounts *AccountService
}

type Option func(*Client)

func WithLogger(log *logging.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithHTTPClient makes resty use hc for the round trips.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = resty.NewWithClient(hc)
		}
	}
}

// WithClock sets the time source used for request signatures.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.signer.Now = now
	}
}

// WithBackOff replaces the exponential retry policy. It is capped by
// Config.MaxRetries either way.
func WithBackOff(newBackOff func() backoff.BackOff) Option {
	return func(c *Client) {
		if newBackOff != nil {
			c.newBackOff = newBackOff
		}
	}
}

func New(cfg Config, opts ...Option) (*Client, error) {
	c := &Client{
		log: logging.NewNop(),
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.Named("coinbase")

	if cfg.Normalize() {
		c.log.Warn("timeout below minimum, using default",
			zap.Duration("minimum", config.MinTimeout),
			zap.Duration("timeout", cfg.Timeout))
	}
	if u, err := url.Parse(cfg.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, invalid("base url %q", cfg.BaseURL)
	}
	c.cfg = cfg
	c.signer.Credentials = auth.Credentials{
		APIKey:     cfg.APIKey,
		Secret:     cfg.Secret,
		APIVersion: cfg.APIVersion,
	}

	if c.http == nil {
		c.http = resty.New()
	}
	c.http.SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader(auth.HeaderAccept, auth.AcceptJSON)
	if !cfg.FollowRedirects {
		c.http.SetRedirectPolicy(resty.NoRedirectPolicy())
	}

	c.data = &DataService{client: c, log: c.log.Named("data")}
	c.user = &UserService{client: c, log: c.log.Named("user")}
	c.accounts = &AccountService{client: c, log: c.log.Named("accounts")}

	c.log.Info("client built",
		zap.String("base_url", cfg.BaseURL),
		zap.Duration("timeout", cfg.Timeout),
		zap.Bool("authenticated", c.signer.Credentials.Allowed()),
		zap.Uint64("max_retries", cfg.MaxRetries))
	return c, nil
}

// Data gives access to the public market data endpoints.
func (c *Client) Data() *DataService {
	return c.data
}

// User gives access to the user endpoints. Every call fails with
// ErrNotAllowed when the client has no credentials.
func (c *Client) User() *UserService {
	return c.user
}

// Accounts gives access to the account endpoints. Every call fails with
// ErrNotAllowed when the client has no credentials.
func (c *Client) Accounts() *AccountService {
	return c.accounts
}

func (c *Client) Config() Config {
	return c.cfg
}

// Close releases the idle connections held by the HTTP client.
func (c *Client) Close() error {
	return c.http.Close()
}
