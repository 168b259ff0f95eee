package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in    string
		slog  slog.Level
		zap   zapcore.Level
		valid bool
	}{
		{"debug", slog.LevelDebug, zapcore.DebugLevel, true},
		{" Info ", slog.LevelInfo, zapcore.InfoLevel, true},
		{"WARN", slog.LevelWarn, zapcore.WarnLevel, true},
		{"error", slog.LevelError, zapcore.ErrorLevel, true},
		{"verbose", slog.LevelInfo, zapcore.InfoLevel, false},
	}
	for _, test := range tests {
		s, z, ok := ParseLevel(test.in)
		assert.Equal(t, test.slog, s, test.in)
		assert.Equal(t, test.zap, z, test.in)
		assert.Equal(t, test.valid, ok, test.in)
	}
}

func TestInitZapRoutesSlogIntoZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	InitZap(zap.New(core), "info")

	Info("Minting Capy", "wallet", 1)
	Debug("hidden")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Minting Capy", entries[0].Message)
	assert.EqualValues(t, 1, entries[0].ContextMap()["wallet"])
}

func TestAdapterWithAddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	NewFromSlog(base).With("address", "0xabc").Info("Breeding capys")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "Breeding capys", record["msg"])
	assert.Equal(t, "0xabc", record["address"])
}

func TestNopAdapterDiscards(t *testing.T) {
	l := NewNopAdapter()
	l.Info("nothing")
	l.With("k", "v").Error("nothing either")
}
