// Package config loads suffixlens settings from a TOML file and the
// environment.
//
// Lookup order, later wins:
//
//  1. Built-in defaults ([Default])
//  2. The config file: --config, or $XDG_CONFIG_HOME/suffixlens/config.toml
//     (falling back to ~/.config/suffixlens/config.toml)
//  3. Environment: SUFFIXLENS_REDIS_ADDR, SUFFIXLENS_MONGO_URI, SUFFIXLENS_ADDR
//
// A missing default file is not an error; a missing explicit file is.
// Unknown keys are rejected so typos do not silently fall back to defaults.
//
// Example file:
//
//	[analysis]
//	max_length = 2048
//	guide_step = 10
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//
//	[store]
//	backend = "mongo"
//	mongo_uri = "mongodb://localhost:27017"
//
//	[server]
//	addr = ":8080"
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/suffixlens/pkg/errors"
	"github.com/matzehuels/suffixlens/pkg/pipeline"
)

const appName = "suffixlens"

// Environment variables that override file settings.
const (
	EnvRedisAddr = "SUFFIXLENS_REDIS_ADDR"
	EnvMongoURI  = "SUFFIXLENS_MONGO_URI"
	EnvAddr      = "SUFFIXLENS_ADDR"
)

// Backend names.
const (
	BackendNone   = "none"
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

var (
	cacheBackends = []string{BackendNone, BackendFile, BackendRedis}
	storeBackends = []string{BackendNone, BackendMemory, BackendFile, BackendMongo}
)

// Config is the full application configuration.
type Config struct {
	Analysis AnalysisConfig `toml:"analysis"`
	Cache    CacheConfig    `toml:"cache"`
	Store    StoreConfig    `toml:"store"`
	Server   ServerConfig   `toml:"server"`

	// Path is the file the config was loaded from, empty if none was read.
	Path string `toml:"-"`
}

// AnalysisConfig mirrors the tunable [pipeline.Options].
type AnalysisConfig struct {
	MaxLength     int     `toml:"max_length"`
	HorizontalGap float64 `toml:"horizontal_gap"`
	DepthScale    float64 `toml:"depth_scale"`
	GuideStep     int     `toml:"guide_step"`
}

// CacheConfig selects the result cache.
type CacheConfig struct {
	Backend       string `toml:"backend"`
	Dir           string `toml:"dir"` // file backend; empty means the XDG cache dir
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// StoreConfig selects the analysis history backend.
type StoreConfig struct {
	Backend         string `toml:"backend"`
	Dir             string `toml:"dir"` // file backend; empty means the XDG data dir
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string `toml:"addr"`
	ShutdownTimeout int    `toml:"shutdown_timeout_seconds"`
	MaxBodyBytes    int64  `toml:"max_body_bytes"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{MaxLength: pipeline.DefaultMaxLength},
		Cache:    CacheConfig{Backend: BackendFile},
		Store:    StoreConfig{Backend: BackendFile},
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10,
			MaxBodyBytes:    1 << 20,
		},
	}
}

// DefaultPath returns the config file location under the XDG config dir.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config at path, or the default location when path is
// empty, applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		if err := cfg.decodeFile(path, explicit); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string, explicit bool) error {
	md, err := toml.DecodeFile(path, c)
	if os.IsNotExist(err) {
		if explicit {
			return errors.Wrap(errors.ErrCodeNotFound, err, "config file %s", path)
		}
		return nil
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidOptions, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	c.Path = path
	return nil
}

// applyEnv overrides backend addresses from the environment. Setting an
// address also selects its backend.
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvRedisAddr); ok && v != "" {
		c.Cache.Backend = BackendRedis
		c.Cache.RedisAddr = v
	}
	if v, ok := os.LookupEnv(EnvMongoURI); ok && v != "" {
		c.Store.Backend = BackendMongo
		c.Store.MongoURI = v
	}
	if v, ok := os.LookupEnv(EnvAddr); ok && v != "" {
		c.Server.Addr = v
	}
}

// Validate checks backend names and the settings each backend requires.
func (c *Config) Validate() error {
	if !slices.Contains(cacheBackends, c.Cache.Backend) {
		return errors.New(errors.ErrCodeInvalidOptions, "cache backend %q (supported: %s)", c.Cache.Backend, strings.Join(cacheBackends, ", "))
	}
	if !slices.Contains(storeBackends, c.Store.Backend) {
		return errors.New(errors.ErrCodeInvalidOptions, "store backend %q (supported: %s)", c.Store.Backend, strings.Join(storeBackends, ", "))
	}
	if c.Cache.Backend == BackendRedis && c.Cache.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidOptions, "redis cache requires redis_addr")
	}
	if c.Store.Backend == BackendMongo && c.Store.MongoURI == "" {
		return errors.New(errors.ErrCodeInvalidOptions, "mongo store requires mongo_uri")
	}
	if c.Server.ShutdownTimeout < 0 || c.Server.MaxBodyBytes < 0 {
		return errors.New(errors.ErrCodeInvalidOptions, "server limits cannot be negative")
	}
	opts := c.PipelineOptions()
	return opts.ValidateAndSetDefaults()
}

// PipelineOptions converts the analysis section to pipeline options.
func (c *Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		MaxLength:     c.Analysis.MaxLength,
		HorizontalGap: c.Analysis.HorizontalGap,
		DepthScale:    c.Analysis.DepthScale,
		GuideStep:     c.Analysis.GuideStep,
	}
}
