package logger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func restore(t *testing.T) {
	t.Helper()
	prev := L
	t.Cleanup(func() { L = prev })
}

func TestInit_Disabled(t *testing.T) {
	restore(t)

	require.NoError(t, Init(Options{Enabled: false}))
	assert.False(t, L.Desugar().Core().Enabled(zapcore.ErrorLevel))
}

func TestInit_WritesDatedFile(t *testing.T) {
	restore(t)
	dir := t.TempDir()

	require.NoError(t, Init(Options{Enabled: true, LogDir: dir, Level: zapcore.DebugLevel}))
	Debug("reconcile", "instructions", 3)
	require.NoError(t, Sync())

	name := filepath.Join(dir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"reconcile"`)
	assert.Contains(t, string(data), `"instructions":3`)
}

func TestInit_LevelFilters(t *testing.T) {
	restore(t)
	dir := t.TempDir()

	require.NoError(t, Init(Options{Enabled: true, LogDir: dir, Level: zapcore.WarnLevel}))
	Info("hidden")
	Warn("shown")
	require.NoError(t, Sync())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	files := []string{
		logPrefix + "2024-01-01" + logSuffix, // older than retention
		logPrefix + "2024-02-20" + logSuffix, // recent
		logPrefix + "garbage" + logSuffix,    // unparseable, kept
		"unrelated-2020-01-01.log",           // other prefix, kept
	}
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), nil, 0644))
	}

	cleanOldLogs(dir, now)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.NotContains(t, names, files[0])
	assert.Contains(t, names, files[1])
	assert.Contains(t, names, files[2])
	assert.Contains(t, names, files[3])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"", zap.InfoLevel, false},
		{"debug", zap.DebugLevel, false},
		{"WARN", zap.WarnLevel, false},
		{"error", zap.ErrorLevel, false},
		{"loud", zap.InfoLevel, true},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}
