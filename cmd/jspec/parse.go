// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jspec-lang/jspec/internal/config"
	"github.com/jspec-lang/jspec/internal/logging"
	"github.com/jspec-lang/jspec/pkg/errutil"
	"github.com/jspec-lang/jspec/pkg/jspec"
)

// parseConfig holds the flags of the parse subcommand.
type parseConfig struct {
	pretty bool
	indent string
}

// newParseCmd creates the parse subcommand (spec.md §6.3): reads a JSPEC
// document from a file argument or stdin, renders it (canonically, or
// pretty with comments preserved), and writes the result to a second file
// argument or stdout. Exits non-zero on a scan or indent error.
func newParseCmd(deps CommonDeps) *cobra.Command {
	cfg := &parseConfig{}

	cmd := &cobra.Command{
		Use:   "parse [input] [output]",
		Short: "Parse and render a JSPEC document",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, deps, cfg, args)
		},
	}

	cmd.Flags().BoolVar(&cfg.pretty, "pretty", false, "pretty-print with comments and indentation preserved")
	cmd.Flags().StringVar(&cfg.indent, "indent", "", "indent string for --pretty (default: config default_indent, or a tab)")

	return cmd
}

func runParse(cmd *cobra.Command, deps CommonDeps, cfg *parseConfig, args []string) error {
	logger := logging.Setup("cli", version, "", deps.stderr())

	loaded, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		errutil.LogError(logger, "loading config failed", err)
		return err
	}

	indent := cfg.indent
	if indent == "" {
		indent = loaded.DefaultIndent
	}

	doc, err := readInput(deps, args)
	if err != nil {
		return err
	}

	var out string
	if cfg.pretty {
		out, err = jspec.PrettyRender(doc, indent)
	} else {
		var pat jspec.Pattern
		pat, err = jspec.Parse(doc)
		if err == nil {
			out = jspec.Render(pat)
		}
	}
	if err != nil {
		errutil.LogError(logger, "parse failed", err)
		return err
	}

	logger.Info("parsed document", "bytes", len(doc), "pretty", cfg.pretty)
	return writeOutput(deps, args, out)
}

func readInput(deps CommonDeps, args []string) (string, error) {
	if len(args) >= 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(deps.stdin())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func writeOutput(deps CommonDeps, args []string, out string) error {
	if len(args) >= 2 {
		return os.WriteFile(args[1], []byte(out+"\n"), 0o644)
	}
	_, err := io.WriteString(deps.stdout(), out+"\n")
	return err
}
