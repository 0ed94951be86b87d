// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jspec-lang/jspec/internal/config"
	"github.com/jspec-lang/jspec/internal/logging"
	"github.com/jspec-lang/jspec/pkg/errutil"
	"github.com/jspec-lang/jspec/pkg/jspec"
)

// checkConfig holds the flags of the check subcommand.
type checkConfig struct {
	rawJSPEC string
	rawJSON  string
}

// newCheckCmd creates the check subcommand (spec.md §6.3): matches a JSPEC
// pattern (from a file or --raw-jspec) against a JSON document (from a file
// or --raw-json). Exits 0 on a match or on a well-formed non-match (printing
// the one-line reason); exits non-zero on a scan error or malformed JSON.
func newCheckCmd(deps CommonDeps) *cobra.Command {
	cfg := &checkConfig{}

	cmd := &cobra.Command{
		Use:   "check [pattern-file] [json-file]",
		Short: "Check a JSON document against a JSPEC pattern",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, deps, cfg, args)
		},
	}

	cmd.Flags().StringVar(&cfg.rawJSPEC, "raw-jspec", "", "JSPEC pattern text, instead of a pattern file")
	cmd.Flags().StringVar(&cfg.rawJSON, "raw-json", "", "JSON document text, instead of a JSON file")

	return cmd
}

func runCheck(cmd *cobra.Command, deps CommonDeps, cfg *checkConfig, args []string) error {
	logger := logging.Setup("cli", version, "", deps.stderr())

	loaded, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		errutil.LogError(logger, "loading config failed", err)
		return err
	}

	patternText, err := resolveInput(args, 0, cfg.rawJSPEC)
	if err != nil {
		return err
	}
	jsonText, err := resolveInput(args, 1, cfg.rawJSON)
	if err != nil {
		return err
	}

	pat, err := jspec.Parse(patternText)
	if err != nil {
		errutil.LogError(logger, "pattern scan failed", err)
		return err
	}

	value, err := jspec.DecodeJSON([]byte(jsonText))
	if err != nil {
		errutil.LogError(logger, "malformed JSON candidate", err)
		return err
	}

	lookup := config.EnvLookup(loaded.MacroEnvPrefix)
	result, err := jspec.Check(pat, value, lookup)
	if err != nil {
		errutil.LogError(logger, "invalid pattern", err)
		return err
	}

	logger.Info("checked document", "ok", result.Ok)
	fmt.Fprintln(deps.stdout(), result.String())
	return nil
}

func resolveInput(args []string, idx int, raw string) (string, error) {
	if raw != "" {
		return raw, nil
	}
	if idx < len(args) && args[idx] != "" {
		data, err := os.ReadFile(args[idx])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return "", fmt.Errorf("no input provided for argument %d (file or --raw flag required)", idx)
}
