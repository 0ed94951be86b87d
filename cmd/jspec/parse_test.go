// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_StdinToStdout(t *testing.T) {
	var out bytes.Buffer
	deps := CommonDeps{Stdin: strings.NewReader(`{"a": 1, "b": 2}`), Stdout: &out}
	cmd := newRootCmd(deps)
	cmd.SetArgs([]string{"parse"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, `{"a": 1, "b": 2}`+"\n", out.String())
}

func TestParse_FileToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.jspec")
	outPath := filepath.Join(dir, "out.jspec")
	require.NoError(t, os.WriteFile(in, []byte(`[1, 2, 3]`), 0o600))

	cmd := newRootCmd(CommonDeps{})
	cmd.SetArgs([]string{"parse", in, outPath})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3]\n", string(data))
}

func TestParse_PrettyWithIndent(t *testing.T) {
	var out bytes.Buffer
	deps := CommonDeps{Stdin: strings.NewReader(`{"a": 1, "b": 2}`), Stdout: &out}
	cmd := newRootCmd(deps)
	cmd.SetArgs([]string{"parse", "--pretty", "--indent=  "})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": 2\n}\n", out.String())
}

func TestParse_ScanErrorExitsNonZero(t *testing.T) {
	var out, errOut bytes.Buffer
	deps := CommonDeps{Stdin: strings.NewReader(`{"a"`), Stdout: &out, Stderr: &errOut}
	cmd := newRootCmd(deps)
	cmd.SetArgs([]string{"parse"})

	assert.Error(t, cmd.Execute())
}

func TestParse_BadIndentExitsNonZero(t *testing.T) {
	var out, errOut bytes.Buffer
	deps := CommonDeps{Stdin: strings.NewReader(`{"a": 1}`), Stdout: &out, Stderr: &errOut}
	cmd := newRootCmd(deps)
	cmd.SetArgs([]string{"parse", "--pretty", "--indent=-"})

	assert.Error(t, cmd.Execute())
}
