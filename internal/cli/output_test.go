package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/tempo/internal/errors"
)

func TestNewOutput(t *testing.T) {
	buf := &bytes.Buffer{}

	assert.IsType(t, &JSONOutput{}, NewOutput("json", buf))
	assert.IsType(t, &TTYOutput{}, NewOutput("text", buf))
}

func TestTTYOutput_Messages(t *testing.T) {
	buf := &bytes.Buffer{}
	out := NewTTYOutput(buf)

	out.Success("wait complete")
	out.Warning("running long")
	out.Error(errors.ErrInterrupted)
	out.Info("00:10:00")

	output := buf.String()
	assert.Contains(t, output, "wait complete")
	assert.Contains(t, output, "running long")
	assert.Contains(t, output, "wait interrupted")
	assert.Contains(t, output, "00:10:00")
}

func TestJSONOutput_MessagesAreSilent(t *testing.T) {
	buf := &bytes.Buffer{}
	out := NewJSONOutput(buf)

	out.Success("wait complete")
	out.Warning("running long")
	out.Info("00:10:00")

	assert.Empty(t, buf.String(), "JSON output should suppress text messages")
}

func TestJSONOutput_Error(t *testing.T) {
	buf := &bytes.Buffer{}
	out := NewJSONOutput(buf)

	out.Error(errors.ErrInterrupted)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	assert.Equal(t, "wait interrupted", payload["error"])
}

func TestOutput_JSONEncoding(t *testing.T) {
	for _, format := range []string{"text", "json"} {
		t.Run(format, func(t *testing.T) {
			buf := &bytes.Buffer{}
			out := NewOutput(format, buf)

			require.NoError(t, out.JSON(map[string]int{"seconds": 600}))

			var payload map[string]int
			require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
			assert.Equal(t, 600, payload["seconds"])
		})
	}
}
