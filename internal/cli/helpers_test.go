package cli

import (
	"bytes"
	"context"
	"testing"
)

// executeCommand runs the root command with the given args, capturing output.
// TEMPO_HOME is redirected to a temp directory so tests never touch the real
// home directory or its log files.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("TEMPO_HOME", t.TempDir())

	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{})

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}
