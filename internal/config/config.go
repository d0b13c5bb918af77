// Package config loads the tspbb service configuration.
//
// Values come from, in increasing priority: DefaultConfig, a YAML file,
// TSPBB_* environment variables, and finally command-line flags applied by
// the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tspbb/tsp"
)

// Cache backends.
const (
	CacheNone  = "none"
	CacheFile  = "file"
	CacheRedis = "redis"
)

// ErrInvalidConfig is wrapped by Validate for every rejected field.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// CacheConfig selects and tunes the solve-result cache.
type CacheConfig struct {
	Backend   string        `yaml:"backend"`
	Dir       string        `yaml:"dir"`
	RedisAddr string        `yaml:"redis_addr"`
	RedisDB   int           `yaml:"redis_db"`
	Prefix    string        `yaml:"prefix"`
	TTL       time.Duration `yaml:"ttl"`
}

// Config holds the service configuration.
type Config struct {
	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"log_level"`

	// MaxCities rejects larger instances at the API boundary.
	MaxCities int `yaml:"max_cities"`

	// SolveTimeout bounds one /solve request. 0 disables the deadline.
	SolveTimeout time.Duration `yaml:"solve_timeout"`

	// MaxNodes bounds expansions per solve. 0 means unlimited.
	MaxNodes int `yaml:"max_nodes"`

	// Frontier is "tree" or "scan".
	Frontier string `yaml:"frontier"`

	// MaxBodyBytes bounds the request body size.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`

	Cache CacheConfig `yaml:"cache"`
}

// DefaultConfig returns a working configuration for a local deployment.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8000",
		LogLevel:     "info",
		MaxCities:    25,
		SolveTimeout: 30 * time.Second,
		MaxNodes:     0,
		Frontier:     "tree",
		MaxBodyBytes: 1 << 20,
		Cache: CacheConfig{
			Backend: CacheNone,
			Dir:     defaultCacheDir(),
			Prefix:  "tspbb:",
			TTL:     24 * time.Hour,
		},
	}
}

func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return dir + string(os.PathSeparator) + "tspbb"
	}

	return ".tspbb-cache"
}

// LoadConfig reads path (if non-empty) over DefaultConfig, then applies
// environment overrides and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.ApplyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ApplyEnv overrides fields from TSPBB_ADDR, TSPBB_LOG_LEVEL,
// TSPBB_CACHE_BACKEND and TSPBB_REDIS_ADDR. lookup is os.LookupEnv in
// production and a map in tests.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("TSPBB_ADDR"); ok && v != "" {
		c.Addr = v
	}
	if v, ok := lookup("TSPBB_LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup("TSPBB_CACHE_BACKEND"); ok && v != "" {
		c.Cache.Backend = v
	}
	if v, ok := lookup("TSPBB_REDIS_ADDR"); ok && v != "" {
		c.Cache.RedisAddr = v
	}
}

// Validate checks field ranges and enumerations.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr is empty", ErrInvalidConfig)
	}
	if c.MaxCities < 2 {
		return fmt.Errorf("%w: max_cities must be ≥ 2, got %d", ErrInvalidConfig, c.MaxCities)
	}
	if c.SolveTimeout < 0 {
		return fmt.Errorf("%w: solve_timeout must be ≥ 0", ErrInvalidConfig)
	}
	if c.MaxNodes < 0 {
		return fmt.Errorf("%w: max_nodes must be ≥ 0", ErrInvalidConfig)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: max_body_bytes must be > 0", ErrInvalidConfig)
	}
	if _, err := tsp.ParseFrontierKind(c.Frontier); err != nil {
		return fmt.Errorf("%w: frontier %q", ErrInvalidConfig, c.Frontier)
	}
	switch c.Cache.Backend {
	case "", CacheNone:
	case CacheFile:
		if c.Cache.Dir == "" {
			return fmt.Errorf("%w: cache.dir is empty", ErrInvalidConfig)
		}
	case CacheRedis:
		if c.Cache.RedisAddr == "" {
			return fmt.Errorf("%w: cache.redis_addr is empty", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: cache.backend %q", ErrInvalidConfig, c.Cache.Backend)
	}

	return nil
}

// SolveOptions converts the solver-related fields into tsp.Options.
func (c Config) SolveOptions() tsp.Options {
	opts := tsp.DefaultOptions()
	opts.Frontier, _ = tsp.ParseFrontierKind(c.Frontier)
	opts.MaxNodes = c.MaxNodes

	return opts
}
