package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig(Config{Paths: []string{"main.hcl"}})
	require.NoError(t, err)

	assert.Equal(t, "auto", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 4, cfg.Workers)
	assert.False(t, cfg.Strict)
}

func TestNewConfig_Errors(t *testing.T) {
	testCases := []struct {
		name string
		cfg  Config
		want string
	}{
		{name: "no paths", cfg: Config{}, want: "at least one manifest path is required"},
		{name: "bad format", cfg: Config{Paths: []string{"a"}, LogFormat: "xml"}, want: `invalid log format "xml"`},
		{name: "bad level", cfg: Config{Paths: []string{"a"}, LogLevel: "trace"}, want: `invalid log level "trace"`},
		{name: "negative workers", cfg: Config{Paths: []string{"a"}, Workers: -1}, want: "invalid worker count -1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewConfig(tc.cfg)
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "enforcetyping.yaml")
	content := `
paths:
  - manifests
  - /abs/calls.hcl
log_format: json
log_level: debug
strict: true
workers: 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "manifests"), "/abs/calls.hcl"}, cfg.Paths)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 2, cfg.Workers)
}

func TestLoadConfigFile_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, Config{}, *cfg)
}

func TestLoadConfigFile_Errors(t *testing.T) {
	dir := t.TempDir()
	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("paths: [a]\nverbose: true\n"), 0o600))

	_, err := LoadConfigFile(unknown)
	assert.ErrorContains(t, err, "field verbose not found")

	_, err = LoadConfigFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
