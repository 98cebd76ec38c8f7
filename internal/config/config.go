package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Table struct {
		// DefaultRows is how many empty rows a fresh table starts with.
		DefaultRows int `yaml:"default_rows" env:"TABLE_DEFAULT_ROWS"`
		// DefaultCredits is the raw credits text placed on fresh rows.
		DefaultCredits string `yaml:"default_credits" env:"TABLE_DEFAULT_CREDITS"`
		// TTL is how long an untouched table is retained before eviction.
		TTL string `yaml:"ttl" env:"TABLE_TTL"`
	} `yaml:"table"`

	GPA struct {
		// DisplayPrecision is the decimal-place count of the canonical
		// formatted GPA string. The raw value keeps full precision.
		DisplayPrecision int `yaml:"display_precision" env:"GPA_DISPLAY_PRECISION"`
	} `yaml:"gpa"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	err := loadFromEnv(config)
	if err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	// Table defaults
	config.Table.DefaultRows = 3
	config.Table.DefaultCredits = "3"
	config.Table.TTL = "30m"

	// GPA defaults
	config.GPA.DisplayPrecision = 2

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Table.DefaultRows < 0 {
		return fmt.Errorf("table default_rows cannot be negative")
	}

	if config.GPA.DisplayPrecision < 0 || config.GPA.DisplayPrecision > 10 {
		return fmt.Errorf("gpa display_precision must be between 0 and 10")
	}

	if _, err := time.ParseDuration(config.Table.TTL); err != nil {
		return fmt.Errorf("invalid table TTL format: %w", err)
	}

	return nil
}

// TableTTL returns the table retention TTL as a duration. Validation has
// already ensured the string parses.
func (c *Config) TableTTL() time.Duration {
	d, err := time.ParseDuration(c.Table.TTL)
	if err != nil {
		return 30 * time.Minute
	}
	return d
}
