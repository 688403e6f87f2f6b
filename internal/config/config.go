package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the top-level application configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Engine     EngineConfig     `mapstructure:"engine"`
	Validation ValidationConfig `mapstructure:"validation"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host               string        `mapstructure:"host"`
	Port               int           `mapstructure:"port"`
	Mode               string        `mapstructure:"mode"`
	ReadTimeout        time.Duration `mapstructure:"read_timeout"`
	WriteTimeout       time.Duration `mapstructure:"write_timeout"`
	MaxRequestBodySize int           `mapstructure:"max_request_body_size"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level     string `mapstructure:"level"`
	Format    string `mapstructure:"format"`
	Output    string `mapstructure:"output"`
	FilePath  string `mapstructure:"file_path"`
	AddSource bool   `mapstructure:"add_source"`
}

// EngineConfig holds Soda scan runner settings
type EngineConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	Timeout        time.Duration `mapstructure:"timeout"`
	DataSourceName string        `mapstructure:"data_source_name"`
}

// ValidationConfig holds scan orchestration settings
type ValidationConfig struct {
	// DefaultConnectionTimeout is injected into the data source spec
	// when the request does not override it
	DefaultConnectionTimeout time.Duration `mapstructure:"default_connection_timeout"`
	// ScanDeadline bounds a single engine invocation inside the gate
	ScanDeadline time.Duration `mapstructure:"scan_deadline"`
	// MaxFailedRows caps the failed-row samples aggregated across all checks
	MaxFailedRows int `mapstructure:"max_failed_rows"`
	// MaxWorkers bounds validations admitted before queueing on the gate
	MaxWorkers int `mapstructure:"max_workers"`
}

// Load reads and validates the configuration file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// Environment variables override file values, e.g. SODA_ENGINE_BASE_URL
	v.SetEnvPrefix("SODA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Note: don't log here, logger is initialized after config is loaded

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.max_request_body_size", 4)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("engine.timeout", 10*time.Minute)
	v.SetDefault("engine.data_source_name", "snowflake_api")

	v.SetDefault("validation.default_connection_timeout", 240*time.Second)
	v.SetDefault("validation.scan_deadline", 300*time.Second)
	v.SetDefault("validation.max_failed_rows", 50)
	v.SetDefault("validation.max_workers", 4)
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server mode: %s, must be 'debug' or 'release'", c.Server.Mode)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("invalid log format: %s, must be 'json' or 'text'", c.Log.Format)
	}

	if c.Engine.BaseURL == "" {
		return fmt.Errorf("engine.base_url is required")
	}
	if c.Engine.DataSourceName == "" {
		return fmt.Errorf("engine.data_source_name is required")
	}

	if c.Validation.ScanDeadline <= 0 {
		return fmt.Errorf("validation.scan_deadline must be positive")
	}
	if c.Validation.MaxFailedRows < 0 {
		return fmt.Errorf("validation.max_failed_rows must not be negative")
	}
	if c.Validation.MaxWorkers <= 0 {
		return fmt.Errorf("validation.max_workers must be positive")
	}

	return nil
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetReadTimeout returns the server read timeout
func (c *Config) GetReadTimeout() time.Duration {
	return c.Server.ReadTimeout
}

// GetWriteTimeout returns the server write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Server.WriteTimeout
}
