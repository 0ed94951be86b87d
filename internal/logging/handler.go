// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JSPEC Contributors

// Package logging provides structured logging for the JSPEC scanner, matcher
// and CLI. It is a single-process library, so there is no trace context to
// decorate log lines with (see DESIGN.md for why OpenTelemetry was dropped);
// instead every line is tagged with the component that emitted it.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// componentHandler wraps a slog.Handler to add a fixed component tag.
type componentHandler struct {
	handler   slog.Handler
	component string
	version   string
}

// Handle adds the component and version attributes to the log record.
func (h *componentHandler) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(
		slog.String("component", h.component),
		slog.String("version", h.version),
	)
	//nolint:wrapcheck // Handler interface requires unwrapped error passthrough
	return h.handler.Handle(ctx, r)
}

// Enabled returns true if the level is enabled.
func (h *componentHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// WithAttrs returns a new handler with the given attributes.
func (h *componentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &componentHandler{
		handler:   h.handler.WithAttrs(attrs),
		component: h.component,
		version:   h.version,
	}
}

// WithGroup returns a new handler with the given group.
func (h *componentHandler) WithGroup(name string) slog.Handler {
	return &componentHandler{
		handler:   h.handler.WithGroup(name),
		component: h.component,
		version:   h.version,
	}
}

// Setup creates a configured slog.Logger for the named component.
// format: "json" or "text" (defaults to "json" if empty).
// If w is nil, writes to os.Stderr.
func Setup(component, version, format string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: slog.LevelDebug}

	var baseHandler slog.Handler
	if format == "text" {
		baseHandler = slog.NewTextHandler(w, opts)
	} else {
		baseHandler = slog.NewJSONHandler(w, opts)
	}

	handler := &componentHandler{
		handler:   baseHandler,
		component: component,
		version:   version,
	}

	return slog.New(handler)
}

// SetDefault sets up and installs the default logger for the named component.
func SetDefault(component, version, format string) {
	slog.SetDefault(Setup(component, version, format, nil))
}
