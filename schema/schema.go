// Package schema has configs, models and shared constants for all parts of passclock.
package schema

import (
	"fmt"
	"time"
)

// PassSchedule holds the resolved pass window for a single ISS contact.
// It is built once at startup from the schedule file (or from documented
// defaults when the file is bad) and is never mutated afterwards.
type PassSchedule struct {
	SchoolOffsetHours float64           // School time zone offset from UTC in hours (supports half hours)
	AOS               time.Time         // Acquisition of Signal as an absolute instant
	LOS               time.Time         // Loss of Signal as an absolute instant
	Extras            map[string]string // Unrecognized schedule file keys, retained for forward compatibility
}

// Duration returns the total pass duration (LOS - AOS).
func (s *PassSchedule) Duration() time.Duration {
	return s.LOS.Sub(s.AOS)
}

// SchoolTime converts an instant to the school's wall clock using the
// configured UTC offset. The school clock is informational only; it never
// drives timer transitions.
func (s *PassSchedule) SchoolTime(t time.Time) time.Time {
	offset := time.Duration(s.SchoolOffsetHours * float64(time.Hour))
	return t.UTC().Add(offset)
}

// TimerSnapshot is the value the engine derives on every tick. Remaining and
// elapsed values are signed seconds; they are clamped to zero only at the
// display boundary, never here. Each snapshot is derived purely from absolute
// instants so repeated ticks accumulate no drift.
type TimerSnapshot struct {
	AOSRemainingSec float64    // Seconds until AOS; negative once AOS has passed
	LOSRemainingSec float64    // Seconds until LOS; negative once LOS has passed
	ElapsedSec      float64    // Seconds since AOS; frozen at the pass duration after LOS
	AOSState        TimerState // Running, Warning, Alert or Stopped
	LOSState        TimerState // NotStarted, Running, Alert or Stopped
	ElapsedState    TimerState // NotStarted, Running or Frozen
}

// ScheduleError is a recoverable schedule file problem. The loader pairs every
// error with a substituted fallback value, so callers always get a usable
// schedule alongside the diagnostics.
type ScheduleError struct {
	Kind   ScheduleErrorKind // Which check failed
	Detail string            // The offending raw value, when there is one
}

// Error implements the error interface.
func (e ScheduleError) Error() string {
	if e.Detail == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %q", e.Kind, e.Detail)
}

// PassEvent records one timer lifecycle transition observed during a run.
// Events are appended to the pass log store once per transition.
type PassEvent struct {
	EventTime time.Time // When the transition was observed
	EventType EventType // Which transition occurred
	AOS       time.Time // The schedule's AOS instant
	LOS       time.Time // The schedule's LOS instant
	Detail    string    // Free-form context, e.g. the elapsed total at LOS
}

// PassLogStatus reports health and size information for the pass log store.
type PassLogStatus struct {
	Backend     string    // Active backend name
	Connected   bool      // Whether a live connection exists
	TotalEvents int       // Number of recorded events
	FirstEvent  time.Time // Timestamp of the oldest event
	LastEvent   time.Time // Timestamp of the newest event
}
