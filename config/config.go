package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/docfs/internal/util"
	"gopkg.in/yaml.v3"
)

// Config contains runtime configuration values for the document provider.
type Config struct {
	RootOptions

	LogLvl         util.LogLevel // Internal log level (Default info)
	Storage        string        // Registered storage backend name (Default "local")
	ListenAddr     string        // HTTP listen address for `serve` (Default 127.0.0.1:8080)
	StatWorkers    int           // Max concurrent stats per child listing (Default 8)
	DefaultSort    string        // Sort applied when a listing requests none (Default native order)
	MemoryCapacity uint64        // Capacity reported by the memory backend in bytes (Default 64MB)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
type ConfigOverride struct {
	RootDir        *string   `yaml:"root_dir,omitempty" json:"root_dir,omitempty"`
	Namespace      *string   `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Title          *string   `yaml:"title,omitempty" json:"title,omitempty"`
	Summary        *string   `yaml:"summary,omitempty" json:"summary,omitempty"`
	MimeTypes      *[]string `yaml:"mime_types,omitempty" json:"mime_types,omitempty"`
	Storage        *string   `yaml:"storage,omitempty" json:"storage,omitempty"`
	ListenAddr     *string   `yaml:"listen_addr,omitempty" json:"listen_addr,omitempty"`
	StatWorkers    *int      `yaml:"stat_workers,omitempty" json:"stat_workers,omitempty"`
	DefaultSort    *string   `yaml:"default_sort,omitempty" json:"default_sort,omitempty"`
	MemoryCapacity *uint64   `yaml:"memory_capacity,omitempty" json:"memory_capacity,omitempty"`
	// LogLvl is a CLI style verbosity between 1 (error) and 5 (trace); out of range values are clamped
	LogLvl *int `yaml:"verbose,omitempty" json:"verbose,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		RootOptions: RootOptions{
			Dir:       DefaultRootDir(),
			Namespace: DefaultNamespace,
			Title:     DefaultTitle,
			Summary:   DefaultSummary,
			MimeTypes: []string{DefaultMimeType},
		},
		LogLvl:         DefaultLogLvl,
		Storage:        DefaultStorage,
		ListenAddr:     DefaultListenAddr,
		StatWorkers:    DefaultStatWorkers,
		DefaultSort:    DefaultSort,
		MemoryCapacity: DefaultMemoryCapacity,
	}
}

// NewConfig creates a Config from defaults with override applied on top.
// A nil override yields the defaults.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override == nil {
		return
	}
	if override.RootDir != nil {
		c.Dir = *override.RootDir
	}
	if override.Namespace != nil {
		c.Namespace = *override.Namespace
	}
	if override.Title != nil {
		c.Title = *override.Title
	}
	if override.Summary != nil {
		c.Summary = *override.Summary
	}
	if override.MimeTypes != nil {
		c.MimeTypes = append([]string(nil), (*override.MimeTypes)...)
	}
	if override.Storage != nil {
		c.Storage = *override.Storage
	}
	if override.ListenAddr != nil {
		c.ListenAddr = *override.ListenAddr
	}
	if override.StatWorkers != nil {
		c.StatWorkers = *override.StatWorkers
	}
	if override.DefaultSort != nil {
		c.DefaultSort = *override.DefaultSort
	}
	if override.MemoryCapacity != nil {
		c.MemoryCapacity = *override.MemoryCapacity
	}
	if override.LogLvl != nil {
		c.LogLvl = verbosityToLevel(*override.LogLvl)
	}
}

// Validate reports configuration values the provider cannot run with
func (c *Config) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("root directory must be set")
	}
	if c.Namespace == "" {
		return fmt.Errorf("namespace must be set")
	}
	if strings.ContainsRune(c.Namespace, ':') {
		return fmt.Errorf("namespace %q must not contain ':'", c.Namespace)
	}
	if c.StatWorkers < 1 {
		return fmt.Errorf("stat_workers must be at least 1, got %d", c.StatWorkers)
	}
	return nil
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(override)
	return cfg, nil
}
