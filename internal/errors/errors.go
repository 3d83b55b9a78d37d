// Package errors provides centralized error handling for tempo.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrSessionNotStopped indicates that a session's elapsed time was
	// requested before Stop was called, so no meaningful duration exists.
	ErrSessionNotStopped = errors.New("session not stopped")

	// ErrInvalidDuration indicates that a wait duration argument could not
	// be parsed or was not a positive interval.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrInvalidSeconds indicates that a seconds argument to the formatter
	// command was not an integer.
	ErrInvalidSeconds = errors.New("invalid seconds value")

	// ErrInterrupted indicates that a wait was cut short by an interrupt
	// signal before its full duration elapsed.
	ErrInterrupted = errors.New("wait interrupted")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidTimer indicates an invalid timer configuration value.
	ErrConfigInvalidTimer = errors.New("invalid timer configuration")
)
