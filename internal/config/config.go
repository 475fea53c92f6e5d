package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CONTACT_BOOK_DB_PATH.
const EnvPrefix = "CONTACT_BOOK"

// Config represents application configuration
type Config struct {
	DBPath    string          `mapstructure:"db_path"`
	Birthdays BirthdaysConfig `mapstructure:"birthdays"`
	Log       LogConfig       `mapstructure:"log"`
}

// BirthdaysConfig controls the upcoming birthdays query
type BirthdaysConfig struct {
	WindowDays int `mapstructure:"window_days"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`  // empty logs to stderr
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// DefaultDBPath returns ~/.contact-book/contacts.db
func DefaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".contact-book", "contacts.db")
}

// Load loads configuration from file, environment and defaults.
// A missing config file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("db_path", DefaultDBPath())
	v.SetDefault("birthdays.window_days", 7)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "warn")

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("contact-book")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.contact-book")
	}

	// Read environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.DBPath = os.ExpandEnv(config.DBPath)
	config.Log.File = os.ExpandEnv(config.Log.File)

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.Birthdays.WindowDays < 0 {
		return fmt.Errorf("birthdays.window_days must not be negative")
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got '%s'", c.Log.Level)
	}
	return nil
}
