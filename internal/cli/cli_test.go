package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	var out bytes.Buffer
	cfg, shouldExit, err := Parse([]string{"manifests"}, &out)
	require.NoError(t, err)
	require.False(t, shouldExit)

	assert.Equal(t, []string{"manifests"}, cfg.Paths)
	assert.Equal(t, "auto", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 4, cfg.Workers)
	assert.False(t, cfg.Strict)
}

func TestParse_Flags(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := Parse([]string{"-log-format", "JSON", "-log-level", "debug", "-strict", "-workers", "8", "a.hcl", "b"}, &out)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.hcl", "b"}, cfg.Paths)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 8, cfg.Workers)
}

func TestParse_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("paths: [manifests]\nlog_level: warn\nworkers: 2\n"), 0o600))

	t.Run("file values", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-config", path}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "manifests")}, cfg.Paths)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, 2, cfg.Workers)
	})

	t.Run("explicit flags and paths override the file", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-config", path, "-workers", "1", "other.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, []string{"other.hcl"}, cfg.Paths)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, 1, cfg.Workers)
	})
}

func TestParse_NoPathsPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	cfg, shouldExit, err := Parse(nil, &out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Help(t *testing.T) {
	_, shouldExit, err := Parse([]string{"-h"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.True(t, shouldExit)
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown flag", args: []string{"-verbose", "a"}, want: "flag provided but not defined"},
		{name: "invalid level", args: []string{"-log-level", "trace", "a"}, want: "invalid log level"},
		{name: "negative workers", args: []string{"-workers", "-2", "a"}, want: "invalid worker count"},
		{name: "missing config file", args: []string{"-config", "/nonexistent/config.yaml"}, want: "reading config"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.args, &bytes.Buffer{})
			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.want)
		})
	}
}
