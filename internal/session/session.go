// Package session tracks elapsed time between a start and a stop event
// through an injected clock. The clock decides what "time" means, which is
// what makes sessions testable: a fixed clock manufactures any elapsed
// duration without waiting for it.
package session

import (
	"github.com/mrz1836/tempo/internal/clock"
	"github.com/mrz1836/tempo/internal/errors"
)

// Session measures the interval between its construction and an explicit
// Stop call, as observed by its clock. The start timestamp is captured
// immediately when the session is created.
//
// A Session is not safe for concurrent use; each goroutine should own its
// own instance.
type Session struct {
	clk       clock.Clock
	startTime clock.Timestamp
	stopTime  clock.Timestamp
	stopped   bool
}

// New creates a Session and captures its start timestamp from the clock.
// A nil clock defaults to the system clock.
func New(c clock.Clock) *Session {
	if c == nil {
		c = clock.SystemClock{}
	}
	return &Session{
		clk:       c,
		startTime: c.Start(),
	}
}

// Stop captures the stop timestamp from the clock, fixing the session's
// elapsed time. Calling Stop again overwrites the stop timestamp with a
// fresh read.
func (s *Session) Stop() {
	s.stopTime = s.clk.Stop()
	s.stopped = true
}

// Stopped reports whether Stop has been called.
func (s *Session) Stopped() bool {
	return s.stopped
}

// Seconds returns the elapsed time of the stopped session in seconds.
// It fails with ErrSessionNotStopped when called before Stop; without a stop
// timestamp there is no meaningful duration to report.
//
// The difference is returned as observed: a clock that runs backwards
// produces a negative value.
func (s *Session) Seconds() (int64, error) {
	if !s.stopped {
		return 0, errors.ErrSessionNotStopped
	}
	return int64(s.stopTime - s.startTime), nil
}

// StartedAt returns the timestamp captured at construction.
func (s *Session) StartedAt() clock.Timestamp {
	return s.startTime
}

// StoppedAt returns the timestamp captured by the last Stop call.
// It is only meaningful after Stop has been called.
func (s *Session) StoppedAt() clock.Timestamp {
	return s.stopTime
}
