package payflow_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	payflow "github.com/wekeepgrowing/payflow-go"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payflow.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestConfigFromFile(t *testing.T) {
	t.Run("loads all fields", func(t *testing.T) {
		path := writeConfigFile(t, `
api_key: sk_test_abc
live_mode: true
base_url: https://api.example.com
timeout: 5s
`)

		cfg, err := payflow.ConfigFromFile(path)
		require.NoError(t, err)

		assert.Equal(t, "sk_test_abc", cfg.APIKey)
		assert.True(t, cfg.LiveMode)
		assert.Equal(t, "https://api.example.com", cfg.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.NotNil(t, cfg.Logger)
	})

	t.Run("env var overrides api key", func(t *testing.T) {
		path := writeConfigFile(t, "api_key: sk_from_file\n")
		t.Setenv("PAYFLOW_API_KEY", "sk_from_env")

		cfg, err := payflow.ConfigFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "sk_from_env", cfg.APIKey)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := payflow.ConfigFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfigFile(t, "api_key: [broken\n")
		_, err := payflow.ConfigFromFile(path)
		assert.Error(t, err)
	})
}
