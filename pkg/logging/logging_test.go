package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf})
	logger.Info("hello", "key", "value")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"key":"value"`)
}

func TestNewDefaultsOutputToStderr(t *testing.T) {
	logger := New(Config{Level: LevelInfo})
	assert.NotNil(t, logger)
}

func TestNopDiscardsOutput(t *testing.T) {
	logger := Nop()
	assert.NotPanics(t, func() {
		logger.Info("discarded")
	})
}

func TestDebugEnabled(t *testing.T) {
	os.Unsetenv(EnvDebug)
	assert.False(t, DebugEnabled())

	os.Setenv(EnvDebug, "1")
	defer os.Unsetenv(EnvDebug)
	assert.True(t, DebugEnabled())
}
