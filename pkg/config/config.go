/*
Copyright 2025 The AlaudaDevops Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config provides configuration management for the pr-leadtime application
package config

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Config holds the configuration for a pr-leadtime run
type Config struct {
	// Platform configuration
	Platform string `json:"platform" yaml:"platform" mapstructure:"platform"`
	Token    string `json:"token" yaml:"token" mapstructure:"token"`
	BaseURL  string `json:"base_url,omitempty" yaml:"base_url,omitempty" mapstructure:"base-url"`

	// Search scope configuration
	Org   string   `json:"org" yaml:"org" mapstructure:"org"`
	Repo  string   `json:"repo,omitempty" yaml:"repo,omitempty" mapstructure:"repo"`
	Users []string `json:"users,omitempty" yaml:"users,omitempty" mapstructure:"users"`

	// AllAuthors disables the default of scoping the search to the
	// authenticated user when no usernames are given
	AllAuthors bool `json:"all_authors,omitempty" yaml:"all_authors,omitempty" mapstructure:"all-authors"`

	// Date range configuration. Since takes precedence over Period.
	Period string `json:"period" yaml:"period" mapstructure:"period"`
	Since  string `json:"since,omitempty" yaml:"since,omitempty" mapstructure:"since"`
	Until  string `json:"until,omitempty" yaml:"until,omitempty" mapstructure:"until"`

	// Output configuration
	Output     string `json:"output_format" yaml:"output_format" mapstructure:"output-format"`
	OutputFile string `json:"output_file,omitempty" yaml:"output_file,omitempty" mapstructure:"output-file"`

	// Logging configuration
	Progress bool `json:"progress,omitempty" yaml:"progress,omitempty" mapstructure:"progress"`
	Verbose  bool `json:"verbose,omitempty" yaml:"verbose,omitempty" mapstructure:"verbose"`
}

// NewDefaultConfig returns a new Config with default values
func NewDefaultConfig() *Config {
	return &Config{
		Platform: "github",
		Period:   "1w",
		Output:   "text",
	}
}

// DebugString returns a JSON representation of the config with sensitive information redacted
func (c *Config) DebugString() string {
	debugConfig := *c
	debugConfig.Token = "[REDACTED]"

	data, err := json.MarshalIndent(debugConfig, "", "  ")
	if err != nil {
		return fmt.Sprintf("failed to marshal config: %v", err)
	}
	return string(data)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Platform == "" {
		return ErrMissingPlatform
	}
	if c.Token == "" {
		return ErrMissingToken
	}
	// An org can be omitted only when the repo carries its own owner
	if c.Org == "" && !strings.Contains(c.Repo, "/") {
		return ErrMissingOrg
	}
	if c.Period == "" && c.Since == "" {
		return ErrMissingDateRange
	}
	return nil
}
