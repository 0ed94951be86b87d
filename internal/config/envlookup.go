// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

package config

import (
	"os"

	"github.com/jspec-lang/jspec/internal/jspec/matcher"
)

// EnvLookup builds a matcher.Lookup backed by the process environment: a
// macro named NAME resolves to the raw JSON text in the
// prefix+NAME environment variable, letting a deployment namespace its
// macros (JSPEC_HOST, say) without touching pattern text (§A.3).
func EnvLookup(prefix string) matcher.Lookup {
	return func(name string) (string, bool) {
		return os.LookupEnv(prefix + name)
	}
}
