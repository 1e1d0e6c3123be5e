package schema

// Custom string types for type safety.
type (
	// TimerState represents the discrete alert state of a timer.
	TimerState string

	// ScheduleErrorKind represents a class of schedule file problem.
	ScheduleErrorKind string

	// EventType represents a pass lifecycle transition.
	EventType string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the pass log.
	DatabaseBackend string
)

// All timer states. The AOS timer walks Running -> Warning -> Alert -> Stopped
// and never backward; the LOS timer is gated on AOS and walks
// NotStarted -> Running -> Alert -> Stopped; the elapsed timer walks
// NotStarted -> Running -> Frozen.
const (
	StateNotStarted TimerState = "not_started"
	StateRunning    TimerState = "running"
	StateWarning    TimerState = "warning"
	StateAlert      TimerState = "alert"
	StateStopped    TimerState = "stopped"
	StateFrozen     TimerState = "frozen"
)

// All schedule error kinds. Every kind is recoverable by substitution: the
// loader swaps in the documented default and keeps going.
const (
	InvalidAOSError   ScheduleErrorKind = "invalid_aos"    // AOS missing or not a valid timestamp
	InvalidLOSError   ScheduleErrorKind = "invalid_los"    // LOS missing or not a valid timestamp
	LOSBeforeAOSError ScheduleErrorKind = "los_before_aos" // Resolved LOS is not after AOS
)

// All pass event types recorded in the log.
const (
	EventScheduleLoaded EventType = "schedule_loaded"
	EventAOSReached     EventType = "aos_reached"
	EventLOSReached     EventType = "los_reached"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All pass log backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Alert thresholds in seconds before AOS/LOS. Fixed program-wide, not
// per-schedule.
const (
	YellowAlertSec = 360 // AOS timer turns Warning at six minutes out
	RedAlertSec    = 60  // AOS/LOS timers turn Alert at one minute out
)

// Schedule file keys.
const (
	KeySTZ = "STZ" // School time zone UTC offset in hours
	KeyAOS = "AOS" // Acquisition of Signal, local civil time
	KeyLOS = "LOS" // Loss of Signal, local civil time
)

// ConfigTimeLayout is the exact fixed-width timestamp format required for
// AOS/LOS values in the schedule file.
const ConfigTimeLayout = "2006-01-02 15:04:05"

// Documented fallback values substituted when the schedule file is bad.
// The default pair sits safely in the past so all timers read Stopped.
const (
	DefaultAOSValue     = "2021-01-01 00:00:00"
	DefaultLOSValue     = "2021-01-01 01:00:00"
	DefaultSchoolOffset = 0.0
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid pass log backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
