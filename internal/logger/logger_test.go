package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func restore(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })
}

func TestNopByDefault(t *testing.T) {
	require.NotNil(t, Logger)
	assert.NotPanics(t, func() { Logger.Infow("ignored", FieldText, "HW200*200") })
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{" error ", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestInitializeJSON(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	require.NoError(t, Initialize(Options{JSON: true, Console: zapcore.AddSync(&buf)}))

	Logger.Infow("parsed", FieldText, "L100*10", FieldFamily, "L")
	Logger.Debugw("hidden")
	Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "parsed", entry["msg"])
	assert.Equal(t, "L100*10", entry[FieldText])
	assert.Equal(t, "L", entry[FieldFamily])
}

func TestInitializeLevel(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	require.NoError(t, Initialize(Options{Level: "warn", Console: zapcore.AddSync(&buf)}))
	Logger.Info("quiet")
	Logger.Warn("loud")
	Sync()

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")

	assert.Error(t, Initialize(Options{Level: "verbose"}))
}

func TestInitializeFile(t *testing.T) {
	restore(t)

	path := filepath.Join(t.TempDir(), "steelqty.log")
	var buf bytes.Buffer
	require.NoError(t, Initialize(Options{File: path, Console: zapcore.AddSync(&buf)}))
	Logger.Infow("written", FieldRow, 3)
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"row":3`)
	assert.Contains(t, buf.String(), "written")
}
