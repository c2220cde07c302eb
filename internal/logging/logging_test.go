package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoop(t *testing.T) {
	require.NotNil(t, Noop())
	require.False(t, Noop().Enabled(context.Background(), slog.LevelError))
}

func TestOrNoop(t *testing.T) {
	require.Same(t, Noop(), OrNoop(nil))

	l := slog.Default()
	require.Same(t, l, OrNoop(l))
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	Component(l, "packedindex").Debug("widened")
	require.Contains(t, buf.String(), "component=packedindex")
	require.Contains(t, buf.String(), "msg=widened")

	require.NotPanics(t, func() { Component(nil, "x").Info("dropped") })
}
