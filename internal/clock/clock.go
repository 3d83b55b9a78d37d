// Package clock provides an abstraction for time operations to improve testability.
// Instead of reading the system time directly, code consumes the Clock interface,
// which can be replaced with fixed-value implementations to control time-dependent
// behavior in tests.
package clock

import "time"

// Timestamp is an integral count of seconds since an arbitrary reference point.
// SystemClock uses the Unix epoch; fixed clocks use a synthetic zero.
type Timestamp int64

// Clock is an interface for reading session boundary times.
// Start is read when a session begins, Stop when it ends. Both operations
// always succeed.
type Clock interface {
	// Start returns the timestamp marking the beginning of an interval.
	Start() Timestamp
	// Stop returns the timestamp marking the end of an interval.
	Stop() Timestamp
}

// SystemClock implements Clock using the actual system time.
// Both operations return the current wall-clock time in whole seconds.
type SystemClock struct{}

// Start returns the current time from the system clock.
func (SystemClock) Start() Timestamp {
	return now()
}

// Stop returns the current time from the system clock.
func (SystemClock) Stop() Timestamp {
	return now()
}

func now() Timestamp {
	return Timestamp(time.Now().Unix())
}

// FixedClock is a Clock returning predetermined values: Start is always zero
// and Stop is always Length. It allows tests and callers to manufacture an
// arbitrary elapsed duration without waiting for it. Instances are independent;
// two FixedClocks share no state.
type FixedClock struct {
	// Length is the value returned by Stop, in seconds.
	Length Timestamp
}

// Start returns zero.
func (FixedClock) Start() Timestamp {
	return 0
}

// Stop returns the configured length.
func (f FixedClock) Stop() Timestamp {
	return f.Length
}

// TenMinuteClock is a Clock whose interval is always exactly ten minutes:
// Start returns 0 and Stop returns 600.
type TenMinuteClock struct{}

// Start returns zero.
func (TenMinuteClock) Start() Timestamp {
	return 0
}

// Stop returns 600 seconds.
func (TenMinuteClock) Stop() Timestamp {
	return 60 * 10
}

// Ensure all variants implement Clock.
var (
	_ Clock = SystemClock{}
	_ Clock = FixedClock{}
	_ Clock = TenMinuteClock{}
)
