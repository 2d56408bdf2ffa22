package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	l := NopLogger{}

	// Should not panic
	l.Debug("debug", "key", "value")
	l.Info("info", "key", "value")
	l.Warn("warn", "key", "value")
	l.Error("error", "key", "value")

	_, ok := l.With("key", "value").(NopLogger)
	assert.True(t, ok, "With should return NopLogger")
}

func TestSlogAdapter(t *testing.T) {
	t.Run("nil_uses_default", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		assert.NotNil(t, adapter.logger)
	})

	t.Run("levels", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		adapter := NewSlogAdapter(slog.New(handler))

		adapter.Debug("debug message", "k", "d")
		adapter.Info("info message", "k", "i")
		adapter.Warn("warn message", "k", "w")
		adapter.Error("error message", "k", "e")

		out := buf.String()
		for _, want := range []string{
			"level=DEBUG msg=\"debug message\" k=d",
			"level=INFO msg=\"info message\" k=i",
			"level=WARN msg=\"warn message\" k=w",
			"level=ERROR msg=\"error message\" k=e",
		} {
			assert.Contains(t, out, want)
		}
	})

	t.Run("with_prepends_attrs", func(t *testing.T) {
		var buf bytes.Buffer
		adapter := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, nil)))

		adapter.With("component", "store").Info("saved")

		assert.Contains(t, buf.String(), "component=store")
	})
}

func TestNewText(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{name: "info_level", debug: false, wantDebug: false},
		{name: "debug_level", debug: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewText(&buf, tt.debug)

			l.Debug("hidden unless debug")
			l.Info("always shown")

			assert.Contains(t, buf.String(), "always shown")
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("hidden unless debug")))
		})
	}
}

func TestOrNop(t *testing.T) {
	_, ok := OrNop(nil).(NopLogger)
	require.True(t, ok)

	l := NewSlogAdapter(nil)
	assert.Same(t, l, OrNop(l))
}
