package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"INFO", logrus.InfoLevel},
		{"warning", logrus.WarnLevel},
		{"warn", logrus.WarnLevel},
		{" error ", logrus.ErrorLevel},
		{"", logrus.WarnLevel},
		{"verbose", logrus.WarnLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "ParseLevel(%q)", tt.in)
	}
}

func TestNew_TextFormat(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	var buf bytes.Buffer
	logger := New("info", &buf)

	logger.WithField("category", "home").Info("recomputed")
	logger.Debug("hidden")

	assert.Contains(t, buf.String(), "category=home")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_JSONInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	var buf bytes.Buffer
	New("info", &buf).WithField("category", "car").Info("recomputed")

	assert.Contains(t, buf.String(), `"category":"car"`)
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DEEPPOCKETS_TEST_LEVEL=debug\n"), 0o644))
	t.Setenv("DEEPPOCKETS_TEST_LEVEL", "")
	require.NoError(t, os.Unsetenv("DEEPPOCKETS_TEST_LEVEL"))

	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "debug", os.Getenv("DEEPPOCKETS_TEST_LEVEL"))
}

func TestLoadEnv_MissingFileIsFine(t *testing.T) {
	assert.NoError(t, LoadEnv(filepath.Join(t.TempDir(), "missing.env")))
}
