// SPDX-License-Identifier: MIT

// Package config holds the wayfind configuration tree, its defaults and its
// validation. Values come from an optional YAML file and WAYFIND_* env vars,
// resolved through viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. WAYFIND_SERVER_ADDR.
const EnvPrefix = "WAYFIND"

// Config is the root configuration structure.
type Config struct {
	Logger     LoggerConfig     `mapstructure:"logger"`
	Server     ServerConfig     `mapstructure:"server"`
	Routing    RoutingConfig    `mapstructure:"routing"`
	Congestion CongestionConfig `mapstructure:"congestion"`
	Scenario   ScenarioConfig   `mapstructure:"scenario"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" json:"level" yaml:"level"`
	Format      string `mapstructure:"format" json:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" json:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" json:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" json:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" json:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" json:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" json:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" json:"compress" yaml:"compress"`
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	Mode            string        `mapstructure:"mode"` // gin mode: debug, release, test
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

// RoutingConfig holds defaults for path queries.
type RoutingConfig struct {
	AvoidPenalty   float64 `mapstructure:"avoid_penalty"`
	ExpansionLimit int     `mapstructure:"expansion_limit"` // 0 = unbounded
	DefaultK       int     `mapstructure:"default_k"`
	MaxK           int     `mapstructure:"max_k"`
}

// CongestionConfig holds the random congestion range and seed.
type CongestionConfig struct {
	RandomMin int   `mapstructure:"random_min"`
	RandomMax int   `mapstructure:"random_max"`
	Seed      int64 `mapstructure:"seed"` // 0 = seeded from the clock
}

// ScenarioConfig points at the scenario document loaded at startup.
// An empty path selects the built-in casino.
type ScenarioConfig struct {
	Path string `mapstructure:"path"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "wayfind")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", false)

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("routing.avoid_penalty", 50.0)
	v.SetDefault("routing.expansion_limit", 0)
	v.SetDefault("routing.default_k", 3)
	v.SetDefault("routing.max_k", 20)

	v.SetDefault("congestion.random_min", 1)
	v.SetDefault("congestion.random_max", 8)
	v.SetDefault("congestion.seed", 0)

	v.SetDefault("scenario.path", "")
}

// Init prepares v: defaults, env overrides and the config file. A missing
// file is tolerated when file is empty; other read errors are returned.
func Init(v *viper.Viper, file string) error {
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("wayfind")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration made of defaults only.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := Load(v)
	if err != nil {
		panic(fmt.Sprintf("config: defaults do not validate: %v", err))
	}

	return cfg
}

// Validate checks the cross-field constraints of the configuration.
func (c *Config) Validate() error {
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be console or json, got %q", c.Logger.Format)
	}
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		return errors.New("server timeouts must be positive")
	}
	if c.Routing.AvoidPenalty < 0 {
		return fmt.Errorf("routing.avoid_penalty must be >= 0, got %v", c.Routing.AvoidPenalty)
	}
	if c.Routing.ExpansionLimit < 0 {
		return fmt.Errorf("routing.expansion_limit must be >= 0, got %d", c.Routing.ExpansionLimit)
	}
	if c.Routing.DefaultK < 1 || c.Routing.MaxK < c.Routing.DefaultK {
		return fmt.Errorf("routing requires 1 <= default_k <= max_k, got %d and %d", c.Routing.DefaultK, c.Routing.MaxK)
	}
	if c.Congestion.RandomMin < 0 || c.Congestion.RandomMin > c.Congestion.RandomMax {
		return fmt.Errorf("congestion requires 0 <= random_min <= random_max, got %d and %d",
			c.Congestion.RandomMin, c.Congestion.RandomMax)
	}

	return nil
}
