// Package config provides Viper-based hierarchical configuration:
// defaults, then an optional config.yaml, then STMT_-prefixed environment
// variables. File paths flow from here into constructors - nothing else in
// the codebase touches fixed file locations.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"spendsight/statement-csv/internal/logging"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Categories struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"categories" yaml:"categories"`

	Overrides struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"overrides" yaml:"overrides"`

	Export struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"export" yaml:"export"`
}

// Load initializes the configuration from defaults, an optional config file
// and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.statement-csv")
	v.AddConfigPath(".statement-csv")
	v.AddConfigPath(".")

	v.SetEnvPrefix("STMT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Not fatal: continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("categories.file", "config/categories.yaml")
	v.SetDefault("overrides.file", "config/overrides.yaml")

	v.SetDefault("export.directory", "out")
}

func validate(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}
	if config.Categories.File == "" {
		return fmt.Errorf("categories.file must not be empty")
	}
	if config.Overrides.File == "" {
		return fmt.Errorf("overrides.file must not be empty")
	}
	return nil
}

// NewLogger builds the application logger from the configured level and format.
func (c *Config) NewLogger() logging.Logger {
	return logging.NewLogrusAdapter(c.Log.Level, c.Log.Format)
}
