package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/tempo/internal/errors"
)

func TestRootCommand_NoArgsShowsHelp(t *testing.T) {
	output, err := executeCommand(t)
	require.NoError(t, err)

	assert.Contains(t, output, "tempo")
	assert.Contains(t, output, "wait")
	assert.Contains(t, output, "format")
}

func TestRootCommand_InvalidOutputFormat(t *testing.T) {
	_, err := executeCommand(t, "--output", "xml")

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidOutputFormat)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestRootCommand_VerboseAndQuietAreExclusive(t *testing.T) {
	_, err := executeCommand(t, "--verbose", "--quiet")

	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestRootCommand_Version(t *testing.T) {
	t.Setenv("TEMPO_HOME", t.TempDir())

	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{Version: "1.2.3", Commit: "abc1234", Date: "2026-01-02"})

	assert.Equal(t, "1.2.3 (commit: abc1234, built: 2026-01-02)", cmd.Version)
}

func TestFormatVersion_Defaults(t *testing.T) {
	assert.Equal(t, "dev (commit: none, built: unknown)", formatVersion(BuildInfo{}))
}

func TestGetLogger_AfterInit(t *testing.T) {
	t.Setenv("TEMPO_HOME", t.TempDir())

	_, err := executeCommand(t, "format", "0")
	require.NoError(t, err)

	// Logger was initialized by PersistentPreRunE; no panic on use.
	logger := GetLogger()
	logger.Debug().Msg("test")
}
