package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizeKVs_RedactsCredentials(t *testing.T) {
	out := sanitizeKVs([]interface{}{"api_key", "sk-123", "student", "std-1", "email", "a@b.c"})
	assert.Equal(t, []interface{}{"api_key", "[REDACTED]", "student", "std-1", "email", "[REDACTED]"}, out)
}

func TestSanitizeKVs_KeepsTokenCounts(t *testing.T) {
	out := sanitizeKVs([]interface{}{"input_tokens", 120, "output_tokens", 40, "API-Key", "sk-1", "refresh_token", "r"})
	assert.Equal(t, []interface{}{"input_tokens", 120, "output_tokens", 40, "API-Key", "[REDACTED]", "refresh_token", "[REDACTED]"}, out)
}

func TestSanitizeKVs_OddLength(t *testing.T) {
	out := sanitizeKVs([]interface{}{"student", "std-1", "dangling"})
	assert.Equal(t, []interface{}{"student", "std-1", "dangling"}, out)
}

func TestWarn_WritesRedactedFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.Warn("provider failed", "api_key", "sk-123", "provider", "anthropic")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "[REDACTED]", fields["api_key"])
	assert.Equal(t, "anthropic", fields["provider"])
}

func TestEveryLevelRedacts(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.Debug("debug", "api_key", "sk-1")
	l.Info("info", "email", "a@b.c", "input_tokens", 7)
	l.Warn("warn", "secret", "s")
	l.Error("error", "token", "t")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "[REDACTED]", entries[0].ContextMap()["api_key"])
	assert.Equal(t, "[REDACTED]", entries[1].ContextMap()["email"])
	assert.EqualValues(t, 7, entries[1].ContextMap()["input_tokens"])
	assert.Equal(t, "[REDACTED]", entries[2].ContextMap()["secret"])
	assert.Equal(t, "[REDACTED]", entries[3].ContextMap()["token"])
}

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "cli"} {
		l, err := New(mode)
		require.NoError(t, err, mode)
		require.NotNil(t, l.SugaredLogger)
	}
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop()
	l.Info("hello", "k", "v")
	l.With("k", "v").Error("boom")
}
