// Package report renders elapsed session time for display.
package report

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mrz1836/tempo/internal/clock"
	"github.com/mrz1836/tempo/internal/errors"
	"github.com/mrz1836/tempo/internal/session"
)

// DisplayTime formats a count of seconds as a zero-padded "HH:MM:SS" string.
// Examples: DisplayTime(2) == "00:00:02", DisplayTime(600) == "00:10:00".
//
// Negative input formats the magnitude with a leading minus sign. Durations
// of 100 hours or more widen the hours field as needed rather than clamping.
func DisplayTime(totalSeconds int64) string {
	sign := ""
	if totalSeconds < 0 {
		sign = "-"
		totalSeconds = -totalSeconds
	}

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("%s%02d:%02d:%02d", sign, hours, minutes, seconds)
}

// Summary is a display-ready record of a stopped session.
type Summary struct {
	// ID uniquely identifies this summary.
	ID string `json:"id"`
	// StartedAt is the session's start timestamp in seconds.
	StartedAt clock.Timestamp `json:"started_at"`
	// StoppedAt is the session's stop timestamp in seconds.
	StoppedAt clock.Timestamp `json:"stopped_at"`
	// Seconds is the elapsed time in whole seconds.
	Seconds int64 `json:"seconds"`
	// Display is the elapsed time formatted as HH:MM:SS.
	Display string `json:"display"`
}

// NewSummary builds a Summary from a stopped session.
// It fails with ErrSessionNotStopped if the session has not been stopped.
func NewSummary(s *session.Session) (*Summary, error) {
	secs, err := s.Seconds()
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize session")
	}

	return &Summary{
		ID:        uuid.New().String(),
		StartedAt: s.StartedAt(),
		StoppedAt: s.StoppedAt(),
		Seconds:   secs,
		Display:   DisplayTime(secs),
	}, nil
}
