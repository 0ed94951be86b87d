// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the jspec CLI (spec.md §6.3).
func NewRootCmd() *cobra.Command {
	return newRootCmd(CommonDeps{})
}

func newRootCmd(deps CommonDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jspec",
		Short: "JSPEC - a JSON pattern matching language",
		Long: `jspec parses, pretty-prints and checks JSPEC patterns against JSON
documents.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	cmd.AddCommand(newParseCmd(deps))
	cmd.AddCommand(newCheckCmd(deps))

	return cmd
}
