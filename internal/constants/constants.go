// Package constants provides centralized constant values used throughout tempo.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Directory and file names used by tempo for its home directory layout.
const (
	// TempoHome is the hidden directory name where tempo stores its data.
	// This directory is created in the user's home directory.
	TempoHome = ".tempo"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// CLILogFileName is the name of the rotating CLI log file.
	CLILogFileName = "tempo.log"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "config.yaml"
)

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the maximum size of a log file before rotation, in megabytes.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age of a rotated log file, in days.
	LogMaxAgeDays = 30

	// LogCompress controls whether rotated log files are gzip-compressed.
	LogCompress = true
)

// Timer defaults.
const (
	// DefaultTick is the default interval between progress log entries
	// while a wait is in flight.
	DefaultTick = 1 * time.Second
)
