// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package main

import (
	"io"
	"os"
)

// CommonDeps contains the injectable IO dependencies shared by every
// subcommand. A zero CommonDeps resolves to the process's real stdin,
// stdout and stderr; tests construct one with in-memory buffers instead,
// in the style of cmd/holomush/deps.go's CommonDeps.
type CommonDeps struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (d CommonDeps) stdin() io.Reader {
	if d.Stdin != nil {
		return d.Stdin
	}
	return os.Stdin
}

func (d CommonDeps) stdout() io.Writer {
	if d.Stdout != nil {
		return d.Stdout
	}
	return os.Stdout
}

func (d CommonDeps) stderr() io.Writer {
	if d.Stderr != nil {
		return d.Stderr
	}
	return os.Stderr
}
