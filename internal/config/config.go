package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables and config keys.
const (
	apiKeyEnv       = "OPENWEATHER_API_KEY"
	apiKeyConfigKey = "api.openweather.key"
	defaultCityKey  = "defaults.city"
	defaultFileName = "config.yaml"
)

// Config holds application configuration loaded from a YAML file,
// with environment variables taking precedence for secrets.
//
// A missing config file is not an error: the CLI works with flags and
// environment variables alone. A malformed file is an error and is
// reported loudly.
type Config struct {
	path string
	data map[string]interface{}
}

// Load reads configuration from the given YAML file path.
// An empty path defaults to config.yaml in the current directory.
func Load(path string) (*Config, error) {
	// Load .env file if it exists (for local development).
	// Environment variables set directly always win.
	_ = godotenv.Load()

	if path == "" {
		path = defaultFileName
	}

	cfg := &Config{
		path: path,
		data: map[string]interface{}{},
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg.data); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.data == nil {
		cfg.data = map[string]interface{}{}
	}

	return cfg, nil
}

// Get returns the configuration value for a dot-notation key
// (e.g. "api.openweather.key"), or nil when the key is absent.
func (c *Config) Get(key string) interface{} {
	var value interface{} = c.data

	for _, k := range splitKey(key) {
		m, ok := value.(map[string]interface{})
		if !ok {
			return nil
		}
		value, ok = m[k]
		if !ok {
			return nil
		}
	}

	return value
}

// GetString returns the string value for a dot-notation key,
// or the empty string when the key is absent or not a string.
func (c *Config) GetString(key string) string {
	s, _ := c.Get(key).(string)
	return s
}

// APIKey returns the OpenWeather API key.
// The environment variable takes precedence over the config file.
// An empty string means no key is configured.
func (c *Config) APIKey() string {
	if v := getEnv(apiKeyEnv, ""); v != "" {
		return v
	}
	return c.GetString(apiKeyConfigKey)
}

// DefaultCity returns the configured default city,
// or the empty string when none is set.
func (c *Config) DefaultCity() string {
	return c.GetString(defaultCityKey)
}

// HasConfigFile reports whether the config file exists on disk.
func (c *Config) HasConfigFile() bool {
	_, err := os.Stat(c.path)
	return err == nil
}

// Path returns the path the config was loaded from.
func (c *Config) Path() string {
	return c.path
}

// getEnv reads an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// splitKey splits a dot-notation key into its parts.
func splitKey(key string) []string {
	var parts []string
	current := ""
	for _, r := range key {
		if r == '.' {
			if current != "" {
				parts = append(parts, current)
				current = ""
			}
			continue
		}
		current += string(r)
	}
	if current != "" {
		parts = append(parts, current)
	}
	return parts
}
