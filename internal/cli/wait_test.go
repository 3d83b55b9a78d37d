package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/tempo/internal/errors"
	"github.com/mrz1836/tempo/internal/report"
)

func TestParseWaitArg(t *testing.T) {
	tests := []struct {
		name     string
		arg      string
		expected time.Duration
		wantErr  bool
	}{
		{name: "bare integer is seconds", arg: "2", expected: 2 * time.Second},
		{name: "go duration", arg: "2s", expected: 2 * time.Second},
		{name: "compound duration", arg: "1m30s", expected: 90 * time.Second},
		{name: "sub-second duration", arg: "250ms", expected: 250 * time.Millisecond},
		{name: "zero rejected", arg: "0", wantErr: true},
		{name: "negative rejected", arg: "-5", wantErr: true},
		{name: "negative duration rejected", arg: "-2s", wantErr: true},
		{name: "garbage rejected", arg: "soon", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := parseWaitArg(tc.arg)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errors.ErrInvalidDuration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, d)
		})
	}
}

func TestWaitOne_Completes(t *testing.T) {
	logger := zerolog.Nop()

	r, err := waitOne(context.Background(), logger, time.Second, 30*time.Millisecond)
	require.NoError(t, err)
	require.NotNil(t, r)

	assert.False(t, r.Interrupted)
	assert.Equal(t, "30ms", r.Requested)

	// A 30ms wait crosses at most one whole-second boundary.
	assert.GreaterOrEqual(t, r.Summary.Seconds, int64(0))
	assert.LessOrEqual(t, r.Summary.Seconds, int64(1))
}

func TestWaitOne_Interrupted(t *testing.T) {
	logger := zerolog.Nop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := waitOne(ctx, logger, time.Second, time.Hour)
	require.ErrorIs(t, err, errors.ErrInterrupted)
	require.NotNil(t, r)

	assert.True(t, r.Interrupted)
	assert.LessOrEqual(t, r.Summary.Seconds, int64(1), "canceled immediately, far short of an hour")
}

func TestRunWait_TextOutput(t *testing.T) {
	logger := zerolog.Nop()
	buf := &bytes.Buffer{}
	out := NewTTYOutput(buf)

	err := runWait(context.Background(), out, logger, "text", time.Second, []time.Duration{20 * time.Millisecond})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "waited 00:00:0")
}

func TestRunWait_ConcurrentWaits(t *testing.T) {
	logger := zerolog.Nop()
	buf := &bytes.Buffer{}
	out := NewJSONOutput(buf)

	durations := []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 30 * time.Millisecond}

	started := time.Now()
	err := runWait(context.Background(), out, logger, "json", time.Second, durations)
	require.NoError(t, err)

	// Concurrent, not sequential: well under the 60ms sum.
	assert.Less(t, time.Since(started), 500*time.Millisecond)

	var results []*waitResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &results))
	require.Len(t, results, 3)

	for i, r := range results {
		assert.Equal(t, durations[i].String(), r.Requested, "results keep argument order")
		assert.False(t, r.Interrupted)
		require.NotNil(t, r.Summary)
		assert.NotEmpty(t, r.Summary.ID)
	}
}

func TestRunWait_CanceledContext(t *testing.T) {
	logger := zerolog.Nop()
	buf := &bytes.Buffer{}
	out := NewTTYOutput(buf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runWait(ctx, out, logger, "text", time.Second, []time.Duration{time.Hour})
	require.ErrorIs(t, err, errors.ErrInterrupted)

	assert.Contains(t, buf.String(), "interrupted after")
}

func TestWaitCommand(t *testing.T) {
	output, err := executeCommand(t, "wait", "20ms")
	require.NoError(t, err)

	assert.Contains(t, output, "waited 00:00:0")
}

func TestWaitCommand_JSONOutput(t *testing.T) {
	output, err := executeCommand(t, "wait", "20ms", "--output", "json")
	require.NoError(t, err)

	var results []*waitResult
	require.NoError(t, json.Unmarshal([]byte(output), &results))
	require.Len(t, results, 1)

	assert.Equal(t, "20ms", results[0].Requested)
	assert.Equal(t, report.DisplayTime(results[0].Summary.Seconds), results[0].Summary.Display)
}

func TestWaitCommand_InvalidDuration(t *testing.T) {
	_, err := executeCommand(t, "wait", "whenever")

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidDuration)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}
