// Package main provides the entry point for the tempo CLI.
package main

import (
	"context"
	"os"

	"github.com/mrz1836/tempo/internal/cli"
)

// Build-time variables set via ldflags.
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	ctx := context.Background()
	err := cli.Execute(ctx, cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	cli.CloseLogFile()
	os.Exit(cli.ExitCodeForError(err))
}
