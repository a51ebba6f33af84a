// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
	"github.com/woozymasta/wiiasset/asseterr"
	"github.com/woozymasta/wiiasset/assetcheck"
	"github.com/woozymasta/wiiasset/yaz0"
	"gopkg.in/yaml.v3"
)

// errConfig means config file or flag values are invalid.
var errConfig = asseterr.Validation("invalid configuration")

// ByteSize is a byte count written as a humanized string ("64MiB", "1 KB").
type ByteSize uint64

// String returns IEC form, e.g. "64 MiB".
func (s ByteSize) String() string {
	return humanize.IBytes(uint64(s))
}

// Set parses a humanized size; implements pflag.Value.
func (s *ByteSize) Set(raw string) error {
	n, err := humanize.ParseBytes(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%w: size %q: %w", errConfig, raw, err)
	}

	*s = ByteSize(n)
	return nil
}

// Type implements pflag.Value.
func (s *ByteSize) Type() string {
	return "size"
}

// UnmarshalYAML accepts plain integers and humanized strings.
func (s *ByteSize) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	return s.Set(raw)
}

// MarshalYAML writes humanized form.
func (s ByteSize) MarshalYAML() (any, error) {
	return s.String(), nil
}

// Config is the wiipatch configuration file.
type Config struct {
	// Mode selects Yaz0 compression for written archives.
	Mode yaz0.Mode `yaml:"mode"`
	// AllowedExtensions lists file extensions accepted by check.
	AllowedExtensions []string `yaml:"allowed_extensions"`
	// MaxDeclaredSize rejects Yaz0 inputs declaring more bytes.
	MaxDeclaredSize ByteSize `yaml:"max_declared_size"`
	// MinArchiveSize warns on smaller decompressed archives.
	MinArchiveSize ByteSize `yaml:"min_archive_size"`
	// ExpectedEntry is the glob of the font entry inside ".szs" archives.
	ExpectedEntry string `yaml:"expected_entry"`
	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level"`
	// Verify re-decodes every written file.
	Verify bool `yaml:"verify"`
}

// DefaultConfig returns built-in defaults used before the config file is merged.
func DefaultConfig() *Config {
	return &Config{
		Mode:              yaz0.ModeOptimized,
		AllowedExtensions: []string{"szs", "brfnt", "bin", "dat"},
		MaxDeclaredSize:   assetcheck.DefaultMaxDeclaredSize,
		MinArchiveSize:    assetcheck.DefaultMinArchiveSize,
		ExpectedEntry:     assetcheck.DefaultExpectedEntry,
		LogLevel:          "info",
		Verify:            true,
	}
}

// LoadConfig reads path over defaults. An empty path returns defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errConfig, path, err)
	}

	return cfg, nil
}

// FontOptions converts config to font check options.
func (c *Config) FontOptions() assetcheck.FontOptions {
	return assetcheck.FontOptions{
		ExpectedEntry:   c.ExpectedEntry,
		MaxDeclaredSize: uint64(c.MaxDeclaredSize),
		MinArchiveSize:  uint64(c.MinArchiveSize),
	}
}

// commonFlags holds flags shared by every subcommand.
type commonFlags struct {
	config          string
	logLevel        string
	mode            string
	maxDeclaredSize ByteSize
	verify          bool
}

// add registers shared flags on fs.
func (f *commonFlags) add(fs *pflag.FlagSet) {
	fs.StringVarP(&f.config, "config", "c", "", "YAML config file")
	fs.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.StringVarP(&f.mode, "mode", "m", "", "Yaz0 compression mode (optimized, literal)")
	fs.Var(&f.maxDeclaredSize, "max-declared-size", "largest accepted Yaz0 declared size, e.g. 64MiB")
	fs.BoolVar(&f.verify, "verify", true, "re-decode written files")
	fs.BoolP("help", "h", false, "show help")
}

// resolve loads config and applies flags explicitly set on fs.
func (f *commonFlags) resolve(fs *pflag.FlagSet) (*Config, error) {
	cfg, err := LoadConfig(f.config)
	if err != nil {
		return nil, err
	}

	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}

	if fs.Changed("mode") {
		mode, err := yaz0.ParseMode(f.mode)
		if err != nil {
			return nil, err
		}
		cfg.Mode = mode
	}

	if fs.Changed("max-declared-size") {
		cfg.MaxDeclaredSize = f.maxDeclaredSize
	}

	if fs.Changed("verify") {
		cfg.Verify = f.verify
	}

	return cfg, nil
}
