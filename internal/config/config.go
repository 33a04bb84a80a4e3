// Package config loads geoscore configuration from defaults, an optional
// .geoscorerc file, a .env file, and GEOSCORE_* environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the geoscore configuration.
type Config struct {
	APIBase   string   `mapstructure:"apiBase" yaml:"apiBase"`
	Timeout   int      `mapstructure:"timeout" yaml:"timeout"` // seconds, 0 = no timeout
	Format    string   `mapstructure:"format" yaml:"format"`
	Output    string   `mapstructure:"output" yaml:"output"`
	Export    string   `mapstructure:"export" yaml:"export"`
	Quiet     bool     `mapstructure:"quiet" yaml:"quiet"`
	Verbose   bool     `mapstructure:"verbose" yaml:"verbose"`
	Seed      int64    `mapstructure:"seed" yaml:"seed"` // 0 = time-seeded
	RelayBase string   `mapstructure:"relayBase" yaml:"relayBase"`
	WikiBase  string   `mapstructure:"wikiBase" yaml:"wikiBase"`
	SkipHosts []string `mapstructure:"skipHosts" yaml:"skipHosts"`
}

// ConfigFiles are the recognized config file names, in lookup order.
var ConfigFiles = []string{".geoscorerc.json", ".geoscorerc.yaml", ".geoscorerc.yml"}

// LoadConfig loads configuration from all sources. apiBase, when non-empty,
// overrides the configured API base (it comes from the --api-base flag).
func LoadConfig(apiBase string) (*Config, error) {
	// A .env file is the conventional place for GEOSCORE_APIBASE during
	// local development. Missing file is fine.
	_ = godotenv.Load()

	viper.SetDefault("apiBase", "http://localhost:8000/api")
	viper.SetDefault("timeout", 0)
	viper.SetDefault("format", "console")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("seed", 0)
	viper.SetDefault("relayBase", "")
	viper.SetDefault("wikiBase", "")

	for _, path := range ConfigFiles {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	viper.SetEnvPrefix("GEOSCORE")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if apiBase != "" {
		config.APIBase = apiBase
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.APIBase == "" {
		return fmt.Errorf("apiBase must not be empty")
	}

	if config.Format != "console" && config.Format != "json" && config.Format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	if config.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}

	for _, pattern := range config.SkipHosts {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid skipHosts pattern: %q", pattern)
		}
	}

	return nil
}

// TimeoutDuration returns the configured remote-call timeout. Zero means no
// timeout: a hung scoring request blocks until it resolves.
func (c *Config) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// SkipHost reports whether host matches any configured skipHosts pattern.
// An empty host never matches.
func (c *Config) SkipHost(host string) bool {
	if host == "" {
		return false
	}
	for _, pattern := range c.SkipHosts {
		if ok, err := doublestar.Match(pattern, host); err == nil && ok {
			return true
		}
	}
	return false
}

// WriteStarter writes a commented starter config file with the current
// values to path. Refuses to overwrite an existing file.
func WriteStarter(config *Config, path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	header := "# geoscore configuration. Values may also come from GEOSCORE_* env vars.\n"
	if err := os.WriteFile(path, append([]byte(header), data...), 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
