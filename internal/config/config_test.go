package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/signing-client/transport"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, transport.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 4, cfg.Workers)
	assert.Empty(t, cfg.APIKey)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("SIGNING_API_KEY", "env-key")
	t.Setenv("SIGNING_BASE_URL", "https://sandbox.example.com/v3")
	t.Setenv("SIGNING_TIMEOUT", "5s")
	t.Setenv("SIGNING_WORKERS", "8")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "https://sandbox.example.com/v3", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 8, cfg.Workers)
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signing.yaml")
	content := "api_key: file-key\naccess_token: file-token\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("SIGNING_ACCESS_TOKEN", "env-token")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "env-token", cfg.AccessToken)
	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, level)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"SIGNING_LOG_LEVEL": "loud",
		"SIGNING_TIMEOUT":   "0s",
		"SIGNING_WORKERS":   "0",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			cfg, err := Load("")
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestConfig_Transport(t *testing.T) {
	cfg := &Config{
		BaseURL:     "https://api.example.com/v3",
		APIKey:      "key",
		AccessToken: "token",
		UserAgent:   "ua",
		Timeout:     time.Second,
	}

	assert.Equal(t, transport.Config{
		BaseURL:     "https://api.example.com/v3",
		APIKey:      "key",
		AccessToken: "token",
		UserAgent:   "ua",
		Timeout:     time.Second,
	}, cfg.Transport())
}
