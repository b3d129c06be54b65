package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetLogWriter(&buf)
	defer SetLogWriter(os.Stderr)

	SetLogLevel("warn")
	Info("hidden", nil)
	assert.Empty(t, buf.String())

	Warning("dropped parameter", map[string]interface{}{KeyParam: "LABELS"})
	assert.Contains(t, buf.String(), "dropped parameter")
	assert.Contains(t, buf.String(), "param=LABELS")

	buf.Reset()
	SetLogLevel("debug")
	Debug("visible", nil)
	assert.Contains(t, buf.String(), "visible")
}

func TestEmptyMessageIgnored(t *testing.T) {
	var buf bytes.Buffer
	SetLogWriter(&buf)
	defer SetLogWriter(os.Stderr)
	SetLogLevel("debug")

	Error("", nil)
	assert.Empty(t, buf.String())
}
