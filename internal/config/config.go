// Package config provides reading and writing of biblinks configuration.
// Supports both global (~/.biblinks/config.yaml) and local
// (.biblinks/config.yaml). Reading: uses local if it exists, otherwise
// global. Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.biblinks/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is library-specific config in .biblinks/config.yaml
	ScopeLocal
)

// Files holds the candidate file directories for link resolution.
type Files struct {
	// Directory is the general file-storage directory.
	Directory string `yaml:"directory,omitempty"`
	// Extensions maps a lowercased extension (without dot) to its default
	// directory, consulted before the general directory.
	Extensions map[string]string `yaml:"extensions,omitempty"`
}

// Autolink holds matching configuration options.
type Autolink struct {
	ExactKeyOnly *bool `yaml:"exact_key_only,omitempty"`
}

// Config contains configuration for biblinks.
type Config struct {
	Files    Files    `yaml:"files,omitempty"`
	Autolink Autolink `yaml:"autolink,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// ExactKeyOnly returns whether prefix matching is disabled (defaults to false).
func (c *Config) ExactKeyOnly() bool {
	if c.Autolink.ExactKeyOnly == nil {
		return false
	}
	return *c.Autolink.ExactKeyOnly
}

// Directories returns the ordered candidate directory list for resolving a
// file reference with the given extension: the extension's default
// directory first, then the general file directory, duplicates removed in
// first-seen order. Unset directories are omitted.
func (c *Config) Directories(ext string) []string {
	var dirs []string
	add := func(dir string) {
		if dir == "" {
			return
		}
		for _, d := range dirs {
			if d == dir {
				return
			}
		}
		dirs = append(dirs, dir)
	}
	add(c.Files.Extensions[ext])
	add(c.Files.Directory)
	return dirs
}

// AllDirectories returns every configured directory sorted longest path
// first, the order Shorten requires so the most specific directory strips.
func (c *Config) AllDirectories() []string {
	var dirs []string
	if c.Files.Directory != "" {
		dirs = append(dirs, c.Files.Directory)
	}
	for _, d := range c.Files.Extensions {
		if d != "" {
			dirs = append(dirs, d)
		}
	}
	sort.Slice(dirs, func(i, j int) bool {
		if len(dirs[i]) != len(dirs[j]) {
			return len(dirs[i]) > len(dirs[j])
		}
		return dirs[i] < dirs[j]
	})
	return dirs
}

// LocalPath returns the path to the local (library) config file.
func LocalPath() string {
	return filepath.Join(".biblinks", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file:
// ~/.biblinks/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".biblinks", "config.yaml")
}

func pathForScope(scope Scope) string {
	if scope == ScopeLocal {
		return LocalPath()
	}
	return GlobalPath()
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	c.scope = scope
	return c.saveToPath(path)
}

func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file %s: %w", path, err)
	}
	c.path = path
	return nil
}
