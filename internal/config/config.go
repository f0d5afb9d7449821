package config

import (
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/signing-client/transport"
)

const envPrefix = "SIGNING_"

type Config struct {
	BaseURL     string        `koanf:"base_url"`
	APIKey      string        `koanf:"api_key"`
	AccessToken string        `koanf:"access_token"`
	UserAgent   string        `koanf:"user_agent"`
	Timeout     time.Duration `koanf:"timeout"`
	LogLevel    string        `koanf:"log_level"`
	Workers     int           `koanf:"workers"`
}

// Load reads the configuration from defaults, then the YAML file at path
// when path is not empty, then SIGNING_* environment variables. Later
// sources win.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// In all cases the defaults should reach the production API
	defaults := map[string]interface{}{
		"base_url":   transport.DefaultBaseURL,
		"user_agent": "signing-client",
		"timeout":    "30s",
		"log_level":  "info",
		"workers":    4,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, "config: defaults")
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "config: file %s", path)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "config: environment")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Timeout <= 0 {
		return errors.Errorf("config: timeout must be positive, got %s", c.Timeout)
	}
	if c.Workers < 1 {
		return errors.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel, errors.Wrap(err, "config: log_level")
	}
	return level, nil
}

// Transport projects the configuration onto the HTTP transport's settings.
func (c *Config) Transport() transport.Config {
	return transport.Config{
		BaseURL:     c.BaseURL,
		APIKey:      c.APIKey,
		AccessToken: c.AccessToken,
		UserAgent:   c.UserAgent,
		Timeout:     c.Timeout,
	}
}
