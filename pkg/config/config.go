package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Log configuration
	Log LogConfig `mapstructure:"log"`

	// Server configuration
	Server ServerConfig `mapstructure:"server"`

	// Pipeline configuration
	Pipeline PipelineConfig `mapstructure:"pipeline"`

	// Export configuration
	Export ExportConfig `mapstructure:"export"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // gin mode: debug, release, test
}

// PipelineConfig holds the detection and classification thresholds
type PipelineConfig struct {
	// MaxGap is the sliding window width for co-occurrence detection
	MaxGap time.Duration `mapstructure:"max_gap"`

	// MinSpan is the systematic/random classification threshold
	MinSpan time.Duration `mapstructure:"min_span"`

	// MaxConcurrency bounds parallel location-group scans; 0 means GOMAXPROCS
	MaxConcurrency int `mapstructure:"max_concurrency"`
}

// ExportConfig holds graph export configuration
type ExportConfig struct {
	ParquetPath string `mapstructure:"parquet_path"`
}

// Load loads configuration from file and environment variables
func Load() (*Config, error) {
	// Set defaults
	setDefaults()

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Override with environment variables if present
	if err := overrideWithEnv(config); err != nil {
		return nil, err
	}

	return config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Log defaults
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	// Server defaults
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")

	// Pipeline defaults
	viper.SetDefault("pipeline.max_gap", "5m")
	viper.SetDefault("pipeline.min_span", "2h")
	viper.SetDefault("pipeline.max_concurrency", 0)

	// Export defaults
	home, err := os.UserHomeDir()
	if err == nil {
		defaultPath := fmt.Sprintf("%s/.cooccur/graphs", home)
		viper.SetDefault("export.parquet_path", defaultPath)
	}
}

// overrideWithEnv overrides config with environment variables
func overrideWithEnv(config *Config) error {
	// Pipeline thresholds
	if gap := os.Getenv("COOCCUR_MAX_GAP"); gap != "" {
		parsed, err := time.ParseDuration(gap)
		if err != nil {
			return fmt.Errorf("invalid COOCCUR_MAX_GAP: %w", err)
		}
		config.Pipeline.MaxGap = parsed
	}
	if span := os.Getenv("COOCCUR_MIN_SPAN"); span != "" {
		parsed, err := time.ParseDuration(span)
		if err != nil {
			return fmt.Errorf("invalid COOCCUR_MIN_SPAN: %w", err)
		}
		config.Pipeline.MinSpan = parsed
	}
	if concurrency := os.Getenv("COOCCUR_MAX_CONCURRENCY"); concurrency != "" {
		parsed, err := strconv.Atoi(concurrency)
		if err != nil {
			return fmt.Errorf("invalid COOCCUR_MAX_CONCURRENCY: %w", err)
		}
		config.Pipeline.MaxConcurrency = parsed
	}

	// Server settings
	if host := os.Getenv("SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		parsed, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid SERVER_PORT: %w", err)
		}
		config.Server.Port = parsed
	}

	// Export settings
	if path := os.Getenv("COOCCUR_PARQUET_PATH"); path != "" {
		config.Export.ParquetPath = path
	}

	return nil
}
