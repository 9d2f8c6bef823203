// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Output struct {
		Format          string `mapstructure:"format" yaml:"format"`
		IncludeMetadata bool   `mapstructure:"include_metadata" yaml:"include_metadata"`
		ValidateSchema  bool   `mapstructure:"validate_schema" yaml:"validate_schema"`
		CSVDelimiter    string `mapstructure:"csv_delimiter" yaml:"csv_delimiter"`
	} `mapstructure:"output" yaml:"output"`

	Profile struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"profile" yaml:"profile"`

	Language struct {
		Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	} `mapstructure:"language" yaml:"language"`

	Batch struct {
		Workers        int    `mapstructure:"workers" yaml:"workers"`
		Incremental    bool   `mapstructure:"incremental" yaml:"incremental"`
		JournalEnabled bool   `mapstructure:"journal_enabled" yaml:"journal_enabled"`
		JournalFile    string `mapstructure:"journal_file" yaml:"journal_file"`
	} `mapstructure:"batch" yaml:"batch"`
}

// InitializeConfig loads configuration with hierarchical precedence:
// defaults, then an optional config file, then environment variables with
// the PDFOUTLINE_ prefix.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.pdf-outline")
	v.AddConfigPath(".pdf-outline")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PDFOUTLINE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars; a broken config file
			// should not make the tool unusable.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("output.format", "json")
	v.SetDefault("output.include_metadata", false)
	v.SetDefault("output.validate_schema", true)
	v.SetDefault("output.csv_delimiter", ",")

	v.SetDefault("profile.file", "profile.yaml")

	v.SetDefault("language.enabled", false)

	v.SetDefault("batch.workers", runtime.NumCPU())
	v.SetDefault("batch.incremental", false)
	v.SetDefault("batch.journal_enabled", true)
	v.SetDefault("batch.journal_file", ".pdf-outline/journal.db")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Output.Format != "json" && config.Output.Format != "csv" {
		return fmt.Errorf("invalid output format: %s (must be 'json' or 'csv')", config.Output.Format)
	}

	if len(config.Output.CSVDelimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.Output.CSVDelimiter)
	}

	if config.Batch.Workers < 1 || config.Batch.Workers > 256 {
		return fmt.Errorf("batch.workers must be between 1 and 256, got: %d", config.Batch.Workers)
	}

	return nil
}
