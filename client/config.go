package client

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds everything needed to build a Client from the environment.
// Environment variables are parsed with the GS2_ prefix, e.g. GS2_CLIENT_ID.
type Config struct {
	ClientID     string        `envconfig:"CLIENT_ID" required:"true"`
	ClientSecret string        `envconfig:"CLIENT_SECRET" required:"true"`
	Region       string        `envconfig:"REGION" default:"ap-northeast-1"`
	Endpoint     string        `envconfig:"ENDPOINT" default:"realtime"`
	BaseURL      string        `envconfig:"BASE_URL"`
	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	Debug        bool          `envconfig:"DEBUG" default:"false"`
}

// LoadConfig reads GS2_* environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("GS2", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	log.Debug().
		Str("client_id", cfg.ClientID).
		Str("region", cfg.Region).
		Str("endpoint", cfg.Endpoint).
		Str("base_url", cfg.BaseURL).
		Dur("http_timeout", cfg.HTTPTimeout).
		Bool("debug", cfg.Debug).
		Msg("realtime client configuration loaded")

	return &cfg, nil
}

// Options translates the config into construction options. Options passed to
// NewFromConfig after these take precedence.
func (c *Config) Options() []Option {
	opts := []Option{WithDebugLogging(c.Debug)}
	if c.Endpoint != "" {
		opts = append(opts, WithEndpoint(c.Endpoint))
	}
	if c.HTTPTimeout > 0 {
		opts = append(opts, WithHTTPTimeout(c.HTTPTimeout))
	}
	if c.BaseURL != "" {
		opts = append(opts, WithBaseURL(c.BaseURL))
	}
	return opts
}

// NewFromConfig builds a Client signed with the configured credentials.
func NewFromConfig(cfg *Config, opts ...Option) (*Client, error) {
	creds, err := NewBasicCredentials(cfg.ClientID, cfg.ClientSecret)
	if err != nil {
		return nil, err
	}
	return New(cfg.Region, creds, append(cfg.Options(), opts...)...)
}

// NewFromEnv is LoadConfig followed by NewFromConfig.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, opts...)
}
