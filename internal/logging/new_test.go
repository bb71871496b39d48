package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONDefault(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Service: "gateway", Output: &buf})

	l.Info(context.Background(), "hello", "k", "v")
	l.Debug(context.Background(), "hidden")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "gateway", rec["service"])
	assert.Equal(t, "v", rec["k"])
}

func TestNew_TextWithLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Format: FormatText, Level: "warn", Output: &buf})

	l.Info(context.Background(), "dropped")
	l.Warn(context.Background(), "kept", "a", 1)

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "msg=kept")
	assert.Contains(t, out, "a=1")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Format: FormatConsole, Service: "authentication", Output: &buf})

	l.Error(context.Background(), "store down", "err", "timeout")

	out := buf.String()
	assert.Contains(t, out, "store down")
	assert.Contains(t, out, "authentication")
	assert.Contains(t, out, "timeout")
}

func TestZerologLogger_FieldsAndWith(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)).With("module", "users")

	l.Debug(context.Background(), "dbg", "email", "a@x.com")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "debug", rec["level"])
	assert.Equal(t, "dbg", rec["message"])
	assert.Equal(t, "users", rec["module"])
	assert.Equal(t, "a@x.com", rec["email"])
}

func TestLevels(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, zerologLevel(""))
	assert.Equal(t, zerolog.InfoLevel, zerologLevel("bogus"))
	assert.Equal(t, zerolog.ErrorLevel, zerologLevel("ERROR"))
}

func TestNop(t *testing.T) {
	var l Logger = Nop{}
	l.With("a", 1).Info(context.Background(), "nothing")
}
