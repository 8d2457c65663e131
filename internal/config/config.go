// Package config loads robot-forge settings from ROBOTFORGE_* environment
// variables and loadouts from YAML files.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/robot-forge/internal/assembly"
	"github.com/KirkDiggler/robot-forge/internal/errors"
	redisclient "github.com/KirkDiggler/robot-forge/internal/redis"
)

// Config holds runtime settings. Command-line flags override these after
// Load returns.
type Config struct {
	LogLevel  string `env:"ROBOTFORGE_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"ROBOTFORGE_LOG_FORMAT" envDefault:"text"`

	RedisMode     string        `env:"ROBOTFORGE_REDIS_MODE"      envDefault:"single"`
	RedisAddrs    []string      `env:"ROBOTFORGE_REDIS_ADDRS"     envDefault:"localhost:6379" envSeparator:","`
	RedisTLS      bool          `env:"ROBOTFORGE_REDIS_TLS"       envDefault:"false"`
	RedisPoolSize int           `env:"ROBOTFORGE_REDIS_POOL_SIZE" envDefault:"10"`
	RedisIdleTime time.Duration `env:"ROBOTFORGE_REDIS_IDLE_TIME" envDefault:"5m"`

	ResultTTL       time.Duration `env:"ROBOTFORGE_RESULT_TTL"       envDefault:"720h"`
	LockTTL         time.Duration `env:"ROBOTFORGE_LOCK_TTL"         envDefault:"30s"`
	AssemblyTimeout time.Duration `env:"ROBOTFORGE_ASSEMBLY_TIMEOUT" envDefault:"0s"`
	BatchLimit      int           `env:"ROBOTFORGE_BATCH_LIMIT"      envDefault:"4"`
	DefaultStrategy string        `env:"ROBOTFORGE_DEFAULT_STRATEGY"`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if _, err := parseLevel(c.LogLevel); err != nil {
		vb.Fieldf("log_level", "unknown level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		vb.Fieldf("log_format", "must be text or json, got %q", c.LogFormat)
	}

	switch redisclient.Mode(c.RedisMode) {
	case redisclient.ModeSingle, redisclient.ModeCluster, redisclient.ModeSentinel:
	default:
		vb.Fieldf("redis_mode", "unknown mode %q", c.RedisMode)
	}
	if len(c.RedisAddrs) == 0 {
		vb.RequiredField("redis_addrs")
	}
	errors.ValidateMin("redis_pool_size", c.RedisPoolSize, 0, vb)

	if c.ResultTTL < 0 {
		vb.Field("result_ttl", "cannot be negative")
	}
	if c.LockTTL < 0 {
		vb.Field("lock_ttl", "cannot be negative")
	}
	if c.AssemblyTimeout < 0 {
		vb.Field("assembly_timeout", "cannot be negative")
	}
	errors.ValidateMin("batch_limit", c.BatchLimit, 0, vb)

	if c.DefaultStrategy != "" {
		if _, err := assembly.PolicyByName(c.DefaultStrategy); err != nil {
			vb.Fieldf("default_strategy", "unknown strategy %q", c.DefaultStrategy)
		}
	}

	return vb.Build()
}

// SlogLevel returns the configured log level, info if it does not parse
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.TrimSpace(s)))
	return level, err
}

// RedisOptions maps the redis settings onto client options
func (c *Config) RedisOptions() *redisclient.Options {
	return &redisclient.Options{
		PoolSize:        c.RedisPoolSize,
		ConnMaxIdleTime: c.RedisIdleTime,
		UseTLS:          c.RedisTLS,
	}
}
