// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

// Package config supplies CLI defaults via koanf: an optional YAML file
// layered under command-line flags. Nothing in the scanner or matcher
// depends on this package — it only feeds default values to cmd/jspec
// (spec.md §6.3).
package config

import (
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// Config holds the CLI's tunable defaults (SPEC_FULL.md §A.3). Every field
// has a zero-config default, so an absent --config file is never an error.
type Config struct {
	// DefaultIndent is the --indent value a parse/pretty invocation falls
	// back to when the flag is unset.
	DefaultIndent string `koanf:"default_indent"`

	// MacroEnvPrefix is prepended to a macro name before it is looked up in
	// the environment, so deployments can namespace macros without editing
	// pattern text (e.g. prefix "JSPEC_" turns <HOST> into JSPEC_HOST).
	MacroEnvPrefix string `koanf:"macro_env_prefix"`

	// ColorOutput is loaded like the other settings, but no command reads
	// it: the check subcommand's diagnostics are always plain text with no
	// ANSI highlighting.
	ColorOutput bool `koanf:"color_output"`
}

// Defaults returns the built-in, zero-config Config.
func Defaults() Config {
	return Config{
		DefaultIndent:  "\t",
		MacroEnvPrefix: "",
		ColorOutput:    false,
	}
}

// Load builds a Config by layering, lowest to highest precedence: built-in
// defaults, an optional YAML file at path (skipped entirely if path is
// empty or the file does not exist), then any bound pflag.FlagSet values.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	def := Defaults()
	if err := k.Load(structProvider(def), nil); err != nil {
		return Config{}, oops.Code("config_load_failed").Wrap(err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Config{}, oops.
					Code("config_load_failed").
					With("path", path).
					Wrap(err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, oops.
				Code("config_load_failed").
				With("path", path).
				Wrap(err)
		}
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Config{}, oops.Code("config_load_failed").Wrap(err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, oops.Code("config_unmarshal_failed").Wrap(err)
	}
	return cfg, nil
}

// structProvider adapts a Config value into a koanf.Provider exposing its
// koanf-tagged fields as a flat map, so Defaults() can be loaded through the
// same k.Load pipeline as the file and flag layers.
func structProvider(cfg Config) koanf.Provider {
	return mapProvider{
		"default_indent":   cfg.DefaultIndent,
		"macro_env_prefix": cfg.MacroEnvPrefix,
		"color_output":     cfg.ColorOutput,
	}
}

type mapProvider map[string]any

func (m mapProvider) ReadBytes() ([]byte, error) {
	return nil, oops.Errorf("mapProvider does not support ReadBytes")
}

func (m mapProvider) Read() (map[string]any, error) {
	return m, nil
}
