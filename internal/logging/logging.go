// Package logging holds the slog helpers shared by bitpack packages.
//
// Library code never logs unless the caller hands it a logger; every
// component defaults to Noop.
package logging

import (
	"io"
	"log/slog"
)

var noop = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
	Level: slog.Level(1000), // unreachable level
}))

// Noop returns a logger that discards all output.
func Noop() *slog.Logger {
	return noop
}

// OrNoop returns l, or the Noop logger when l is nil.
func OrNoop(l *slog.Logger) *slog.Logger {
	if l == nil {
		return noop
	}

	return l
}

// Component returns l tagged with the component name.
func Component(l *slog.Logger, name string) *slog.Logger {
	return OrNoop(l).With("component", name)
}
