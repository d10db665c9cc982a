package commons

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"dinette/internal/config"
)

// LoadConfig resolves configuration from a YAML file when path names one,
// falling back to environment variables (with defaults) when path is empty
// or the file does not exist.
func LoadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config.Load()
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}
