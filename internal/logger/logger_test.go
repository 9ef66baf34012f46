package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	require.NotNil(t, NewLogger("test", false))
}

// TestNewLogger_Fields verifies that every entry carries the role, a
// timestamp and the caller function.
func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "test-role", false)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewLogger_DevelopmentEmitsDebug(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "dev", false)

	l.Debug().Msg("debug line")

	assert.NotEmpty(t, buf.String())
}

func TestNewLogger_ProductionSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "prod", true)

	l.Debug().Msg("debug line")
	assert.Empty(t, buf.String())

	l.Info().Msg("info line")
	assert.Equal(t, "info line", decodeEntry(t, &buf)["message"])
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	assert.Equal(t, "ctx-value", decodeEntry(t, &buf)["ctx-key"])
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "req-value", decodeEntry(t, &buf)["req-key"])
}

func TestFromContext_NothingAttachedIsDisabled(t *testing.T) {
	assert.Equal(t, zerolog.Disabled, FromContext(context.Background()).GetLevel())
}

func TestFromContextOr(t *testing.T) {
	var fallbackBuf, ctxBuf bytes.Buffer
	fallback := newLogger(&fallbackBuf, "fallback", false)

	FromContextOr(context.Background(), fallback).Info().Msg("no ctx logger")
	assert.Equal(t, "fallback", decodeEntry(t, &fallbackBuf)["role"])

	zl := zerolog.New(&ctxBuf).With().Str("req-key", "req-value").Logger()
	FromContextOr(zl.WithContext(context.Background()), fallback).Info().Msg("ctx logger")
	assert.Equal(t, "req-value", decodeEntry(t, &ctxBuf)["req-key"])

	require.NotNil(t, FromContextOr(context.Background(), nil))
}
