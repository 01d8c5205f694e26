// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// SupportedFormats lists the output formats a config file may select
var SupportedFormats = []string{"text", "json", "yaml"}

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format  string `yaml:"format"`
		NoColor bool   `yaml:"no_color"`
		Debug   bool   `yaml:"debug"`
	} `yaml:"defaults"`

	// Profiles for different environments
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents a named set of output settings
type Profile struct {
	Format      string `yaml:"format"`
	NoColor     bool   `yaml:"no_color"`
	Debug       bool   `yaml:"debug"`
	Description string `yaml:"description"`
}

// LoadConfig loads configuration from the specified file path. An empty
// path returns the built-in defaults; nothing is searched for.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	config.Defaults.Format = "text"
	config.Defaults.NoColor = false
	config.Defaults.Debug = false

	config.Profiles["ci"] = Profile{
		Format:      "json",
		NoColor:     true,
		Description: "Machine-readable output for CI pipelines",
	}

	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// An empty document or a "profiles:" key with no entries leaves the map nil
	if config.Profiles == nil {
		config.Profiles = make(map[string]Profile)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ListProfiles returns the available profile names in sorted order
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	sort.Strings(profiles)
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// ValidateConfig checks that every configured format is supported
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	if config.Defaults.Format != "" && !isSupportedFormat(config.Defaults.Format) {
		return fmt.Errorf("unsupported default format '%s'", config.Defaults.Format)
	}

	for name, profile := range config.Profiles {
		if profile.Format != "" && !isSupportedFormat(profile.Format) {
			return fmt.Errorf("unsupported format '%s' in profile '%s'", profile.Format, name)
		}
	}

	return nil
}

func isSupportedFormat(format string) bool {
	for _, f := range SupportedFormats {
		if f == format {
			return true
		}
	}
	return false
}
