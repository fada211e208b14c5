package debug

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stdout) })

	prevEnabled, prevLevel := IsEnabled, CurrentLevel
	t.Cleanup(func() { IsEnabled, CurrentLevel = prevEnabled, prevLevel })
	return &buf
}

func TestLogDisabled(t *testing.T) {
	buf := captureLogs(t)
	IsEnabled = false

	Info("should not appear")
	assert.Empty(t, buf.String())
}

func TestLogLevelFiltering(t *testing.T) {
	buf := captureLogs(t)
	IsEnabled = true
	CurrentLevel = LevelWarning

	Debug("too low")
	Info("still too low")
	Warning("warning message")
	Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "too low")
	assert.Contains(t, output, "warning message")
	assert.Contains(t, output, "error message")
}

func TestLogFormat(t *testing.T) {
	buf := captureLogs(t)
	IsEnabled = true
	CurrentLevel = LevelDebug

	Info("job %s reached %d%%", "crunch-1", 42)

	line := buf.String()
	assert.True(t, strings.HasPrefix(line, "[INFO]"), "line: %q", line)
	assert.Contains(t, line, "job crunch-1 reached 42%")
	assert.Contains(t, line, "debug_test.go")
}

func TestReinitialize(t *testing.T) {
	captureLogs(t)

	t.Setenv("DEBUG", "true")
	t.Setenv("LOG_LEVEL", "ERROR")
	Reinitialize()
	assert.True(t, IsEnabled)
	assert.Equal(t, LevelError, CurrentLevel)

	t.Setenv("DEBUG", "false")
	t.Setenv("LOG_LEVEL", "bogus")
	Reinitialize()
	assert.False(t, IsEnabled)
	assert.Equal(t, LevelInfo, CurrentLevel)
}
