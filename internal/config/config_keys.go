// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. This separation allows config.go to focus on YAML
// structure and loading, while this file handles the CLI and MCP interface
// where config is accessed by string keys (e.g., "files.directory").
//
// Per-extension directories use dynamic keys of the form "files.ext.pdf";
// these cannot be enumerated statically, so ValidKeys lists the pattern.

package config

import (
	"fmt"
	"slices"
	"strings"
)

const extKeyPrefix = "files.ext."

// ValidKeys returns all valid configuration keys. The "files.ext.<ext>"
// entry stands for the per-extension directory family.
func ValidKeys() []string {
	return []string{
		"files.directory",
		"files.ext.<ext>",
		"autolink.exact_key_only",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	if ext, ok := strings.CutPrefix(key, extKeyPrefix); ok {
		return ext != ""
	}
	return slices.Contains([]string{"files.directory", "autolink.exact_key_only"}, key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	if ext, ok := strings.CutPrefix(key, extKeyPrefix); ok && ext != "" {
		return c.Files.Extensions[strings.ToLower(ext)], nil
	}
	switch key {
	case "files.directory":
		return c.Files.Directory, nil
	case "autolink.exact_key_only":
		if c.ExactKeyOnly() {
			return "true", nil
		}
		return "false", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	if ext, ok := strings.CutPrefix(key, extKeyPrefix); ok && ext != "" {
		if c.Files.Extensions == nil {
			c.Files.Extensions = make(map[string]string)
		}
		ext = strings.ToLower(ext)
		if value == "" {
			delete(c.Files.Extensions, ext)
		} else {
			c.Files.Extensions[ext] = value
		}
		return nil
	}
	switch key {
	case "files.directory":
		c.Files.Directory = value
	case "autolink.exact_key_only":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: autolink.exact_key_only must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Autolink.ExactKeyOnly = &b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}
