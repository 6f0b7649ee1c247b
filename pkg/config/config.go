// Copyright 2026 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jtrefon/languages-benchmark/pkg/errors"
	"github.com/jtrefon/languages-benchmark/pkg/person"
)

const (
	// ProfileNone disables profiling.
	ProfileNone = ""
	// ProfileCPU records a CPU profile around the benchmark phases.
	ProfileCPU = "cpu"
	// ProfileMem records a heap profile around the benchmark phases.
	ProfileMem = "mem"

	defaultLogLevel   = "info"
	defaultIterations = 1
	defaultProfileDir = "."
)

var validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}

// Config represents the configuration of a benchmark run.
type Config struct {
	// Samples is the path of the sample file, .zst, .gz and .lz4 files are decompressed.
	Samples string `toml:"samples" json:"samples"`
	// Codec is the JSON implementation used to decode the samples.
	Codec string `toml:"codec" json:"codec"`
	// Iterations is how many times every phase runs.
	Iterations int `toml:"iterations" json:"iterations"`

	LogLevel string `toml:"log-level" json:"log-level"`
	LogFile  string `toml:"log-file" json:"log-file"`

	// Report is the path of the JSON report, empty disables it.
	Report string `toml:"report" json:"report"`
	// MetricsFile is the path of the prometheus text file, empty disables it.
	MetricsFile string `toml:"metrics-file" json:"metrics-file"`

	Profile    string `toml:"profile" json:"profile"`
	ProfileDir string `toml:"profile-dir" json:"profile-dir"`
}

// NewDefaultConfig returns the configuration of a plain run over samples.json.
func NewDefaultConfig() *Config {
	return &Config{
		Samples:    person.DefaultSamplesPath,
		Codec:      person.CodecJSON,
		Iterations: defaultIterations,
		LogLevel:   defaultLogLevel,
		ProfileDir: defaultProfileDir,
	}
}

// LoadConfig decodes the TOML file at path on top of the default configuration.
func LoadConfig(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.ErrInvalidConfig.GenWithStackByArgs("config path is empty")
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.ErrInvalidConfig.GenWithStackByArgs(
			fmt.Sprintf("config file does not exist: %s", path))
	}

	cfg := NewDefaultConfig()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.WrapError(errors.ErrInvalidConfig, err, "decode config file failed")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.ErrInvalidConfig.GenWithStackByArgs(
			fmt.Sprintf("unknown keys in config: %v", undecoded))
	}
	if err := cfg.ValidateAndAdjust(); err != nil {
		return nil, errors.Trace(err)
	}
	return cfg, nil
}

// ValidateAndAdjust normalizes the string options and validates every field.
func (c *Config) ValidateAndAdjust() error {
	c.Samples = strings.TrimSpace(c.Samples)
	c.Codec = strings.ToLower(strings.TrimSpace(c.Codec))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Profile = strings.ToLower(strings.TrimSpace(c.Profile))

	if c.Samples == "" {
		return errors.ErrInvalidConfig.GenWithStackByArgs("samples is required")
	}
	if c.Codec == "" {
		c.Codec = person.CodecJSON
	}
	if _, err := person.CodecByName(c.Codec); err != nil {
		return errors.WrapError(errors.ErrInvalidConfig, err, "codec")
	}
	if c.Iterations < 1 {
		return errors.ErrInvalidConfig.GenWithStackByArgs(
			fmt.Sprintf("iterations must be >= 1, got %d", c.Iterations))
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if !slices.Contains(validLogLevels, c.LogLevel) {
		return errors.ErrInvalidConfig.GenWithStackByArgs(
			fmt.Sprintf("unsupported log level %s, expect one of %v", c.LogLevel, validLogLevels))
	}
	switch c.Profile {
	case ProfileNone, ProfileCPU, ProfileMem:
	default:
		return errors.ErrInvalidConfig.GenWithStackByArgs(
			fmt.Sprintf("unsupported profile %s, expect cpu or mem", c.Profile))
	}
	if c.ProfileDir == "" {
		c.ProfileDir = defaultProfileDir
	}
	return nil
}

