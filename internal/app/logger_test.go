package app

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Formats(t *testing.T) {
	t.Run("auto writes json to a non-terminal", func(t *testing.T) {
		var buf bytes.Buffer
		newLogger("info", "auto", &buf).Info("hello", "k", "v")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "hello", entry["msg"])
		assert.Equal(t, "v", entry["k"])
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		newLogger("info", "text", &buf).Info("hello", "k", "v")
		assert.Contains(t, buf.String(), "msg=hello k=v")
	})
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("warn", "text", &buf)
	logger.Info("quiet")
	logger.Warn("loud")

	out := buf.String()
	assert.False(t, strings.Contains(out, "quiet"))
	assert.Contains(t, out, "loud")
}

func TestIsTerminal_NonFileWriter(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
}
