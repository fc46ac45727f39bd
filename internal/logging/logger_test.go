package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"debug": zapcore.DebugLevel,
		"WARN":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	} {
		got, err := parseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := parseLevel("loud")
	assert.Error(t, err)
}

func TestNew_WritesJSONToConfiguredPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	cfg := DefaultConfig()
	cfg.OutputPaths = []string{path}

	l, err := New(cfg)
	require.NoError(t, err)
	l.Debug("hidden")
	l.Info("visible", zap.String("run_id", "abc"))
	_ = l.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(raw)
	assert.Contains(t, out, `"message":"visible"`)
	assert.Contains(t, out, `"run_id":"abc"`)
	assert.NotContains(t, out, "hidden")
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "chatty"})
	assert.Error(t, err)
}

func TestDevelopmentConfig(t *testing.T) {
	cfg := DevelopmentConfig()
	assert.True(t, cfg.Development)
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "console", encodingFormat(cfg.Development))
	assert.Equal(t, "json", encodingFormat(false))
}
