// Package config loads server configuration from TOML files.
//
// The serve command reads a single file covering the listen address,
// the chart store backend, the cache backend, and default layout
// spacing. Every field has a working default, so a missing file is not
// an error: `orgflow serve` with no config runs an in-memory store
// with a file cache.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/orgflow/pkg/layout"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

// Cache backends.
const (
	CacheNone  = "none"
	CacheFile  = "file"
	CacheRedis = "redis"
)

// Config holds orgflow server configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Store  StoreConfig  `toml:"store"`
	Cache  CacheConfig  `toml:"cache"`
	Layout LayoutConfig `toml:"layout"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// StoreConfig selects the chart store backend.
type StoreConfig struct {
	Backend  string `toml:"backend"` // "memory", "mongo"
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// CacheConfig selects the pipeline cache backend.
type CacheConfig struct {
	Backend string `toml:"backend"` // "none", "file", "redis"
	Dir     string `toml:"dir"`     // file backend; empty means the user cache dir
	Addr    string `toml:"addr"`    // redis backend
}

// LayoutConfig sets the default spacing for charts that do not carry
// their own parameters.
type LayoutConfig struct {
	LevelHeight    float64 `toml:"level_height"`
	ShapeGap       float64 `toml:"shape_gap"`
	VerticalIndent float64 `toml:"vertical_indent"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		Store:  StoreConfig{Backend: StoreMemory, URI: "mongodb://localhost:27017", Database: "orgflow"},
		Cache:  CacheConfig{Backend: CacheFile, Addr: "localhost:6379"},
		Layout: LayoutConfig{
			LevelHeight:    layout.DefaultLevelHeight,
			ShapeGap:       layout.DefaultShapeGap,
			VerticalIndent: layout.DefaultVerticalIndent,
		},
	}
}

// ConfigDir returns the orgflow config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "orgflow")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "orgflow.toml")
}

// CacheDir returns the orgflow cache directory path (~/.cache/orgflow).
// Used when the cache backend is "file" and no dir is configured.
func CacheDir() string {
	dir := os.Getenv("XDG_CACHE_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".cache")
	}
	return filepath.Join(dir, "orgflow")
}

// Load reads the config at path, layering file values over defaults.
// An empty path means DefaultPath(). A missing file yields the
// defaults; an unreadable or invalid file is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories.
// An empty path means DefaultPath().
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

var validStoreBackends = map[string]bool{
	StoreMemory: true,
	StoreMongo:  true,
}

var validCacheBackends = map[string]bool{
	CacheNone:  true,
	CacheFile:  true,
	CacheRedis: true,
}

// Validate checks backend names and spacing values.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server addr must not be empty")
	}
	if !validStoreBackends[c.Store.Backend] {
		return fmt.Errorf("invalid store backend: %q (must be one of: memory, mongo)", c.Store.Backend)
	}
	if !validCacheBackends[c.Cache.Backend] {
		return fmt.Errorf("invalid cache backend: %q (must be one of: none, file, redis)", c.Cache.Backend)
	}
	if c.Store.Backend == StoreMongo && c.Store.URI == "" {
		return errors.New("store uri must be set for the mongo backend")
	}
	if c.Cache.Backend == CacheRedis && c.Cache.Addr == "" {
		return errors.New("cache addr must be set for the redis backend")
	}

	spacing := map[string]float64{
		"level_height":    c.Layout.LevelHeight,
		"shape_gap":       c.Layout.ShapeGap,
		"vertical_indent": c.Layout.VerticalIndent,
	}
	for name, v := range spacing {
		if v < 0 {
			return fmt.Errorf("layout %s must not be negative, got %v", name, v)
		}
	}
	return nil
}

// LayoutParams converts the configured spacing to engine parameters,
// backfilling zeros with the engine defaults.
func (c *Config) LayoutParams() layout.Params {
	p := layout.Params{
		LevelHeight:    c.Layout.LevelHeight,
		ShapeGap:       c.Layout.ShapeGap,
		VerticalIndent: c.Layout.VerticalIndent,
	}
	def := layout.DefaultParams()
	if p.LevelHeight == 0 {
		p.LevelHeight = def.LevelHeight
	}
	if p.ShapeGap == 0 {
		p.ShapeGap = def.ShapeGap
	}
	if p.VerticalIndent == 0 {
		p.VerticalIndent = def.VerticalIndent
	}
	return p
}
