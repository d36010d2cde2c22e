// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// ParseLevel maps a config level name to a pterm log level. Unknown names map to info.
func ParseLevel(name string) pterm.LogLevel {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "warn", "warning":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}

// New returns a stderr logger at the given level; verbose forces debug.
func New(level string, verbose bool) *pterm.Logger {
	lvl := ParseLevel(level)
	if verbose {
		lvl = pterm.LogLevelDebug
	}
	return pterm.DefaultLogger.WithLevel(lvl).WithWriter(os.Stderr)
}

// Nop returns a logger that discards everything.
func Nop() *pterm.Logger {
	return pterm.DefaultLogger.WithLevel(pterm.LogLevelError).WithWriter(io.Discard)
}
