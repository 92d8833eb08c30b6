package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "inspecto", configBaseName)
	assert.Equal(t, "inspecto.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "grid.max_columns", maxColumnsKey)
	assert.Equal(t, "grid.image_width", imageWidthKey)
	assert.Equal(t, "freeform.no_upscale", freeFormNoUpscaleKey)
	assert.Equal(t, 4, defaultMaxColumns)
	assert.Equal(t, 350, defaultImageWidth)
	assert.Equal(t, "ED", defaultSamplePrefix)
	assert.Equal(t, 3, defaultFreeFormRows)
	assert.Equal(t, 4, defaultFreeFormColumns)
	assert.Equal(t, "INSPECTO", envPrefix)
	assert.Equal(t, ".inspecto.log", defaultLogFilename)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger_WritesToFile(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "inspecto.log")
	configureLogger(logPath, true)

	slog.Debug("debug line", "tag", "a.png")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "debug line")
	assert.Contains(t, string(data), "tag=a.png")
}
