package payflow

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wekeepgrowing/payflow-go/internal/logger"
)

// fileConfig is the on-disk shape of a client configuration file. Timeout
// is a Go duration string ("30s", "500ms"); yaml.v3 cannot decode those
// into time.Duration directly.
type fileConfig struct {
	APIKey   string        `yaml:"api_key"`
	LiveMode bool          `yaml:"live_mode"`
	BaseURL  string        `yaml:"base_url"`
	Timeout  string        `yaml:"timeout"`
	Log      logger.Config `yaml:"log"`
}

// ConfigFromFile loads a Config from a YAML file. The PAYFLOW_API_KEY
// environment variable, when set, overrides the key in the file so
// credentials can stay out of checked-in config.
func ConfigFromFile(path string) (Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if key := os.Getenv("PAYFLOW_API_KEY"); key != "" {
		fc.APIKey = key
	}

	var timeout time.Duration
	if fc.Timeout != "" {
		timeout, err = time.ParseDuration(fc.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("invalid timeout %q: %w", fc.Timeout, err)
		}
	}

	log, err := logger.New(fc.Log)
	if err != nil {
		return Config{}, fmt.Errorf("failed to build logger: %w", err)
	}

	return Config{
		APIKey:   fc.APIKey,
		LiveMode: fc.LiveMode,
		BaseURL:  fc.BaseURL,
		Timeout:  timeout,
		Logger:   log,
	}, nil
}
