package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/arissops/passclock/schema"
)

// Timer state label constants.
const (
	RunningValue    = "Running"  // Counting toward an event
	WarningValue    = "Warning"  // Inside the yellow alert window
	AlertValue      = "Alert"    // Inside the red alert window
	StoppedValue    = "Stopped"  // Event has passed
	NotStartedValue = "Pending"  // Not yet armed
	FrozenValue     = "Complete" // Elapsed time frozen at pass end
)

// Color variables for console output.
var (
	RunningColor = color.New(color.FgGreen, color.Bold)  // runningColor represents a healthy countdown.
	WarningColor = color.New(color.FgYellow, color.Bold) // warningColor represents the six-minute window.
	AlertColor   = color.New(color.FgRed, color.Bold)    // alertColor represents the final minute.
	IdleColor    = color.New(color.FgHiBlack)            // idleColor represents stopped or pending timers.
	ElapsedColor = color.New(color.FgHiYellow)           // elapsedColor represents time into the pass.
)

// GetPlainStateLabel returns a plain text label for a timer state. This is
// the core logic used for CSV, JSON, and table printing.
func GetPlainStateLabel(state schema.TimerState) string {
	switch state {
	case schema.StateRunning:
		return RunningValue
	case schema.StateWarning:
		return WarningValue
	case schema.StateAlert:
		return AlertValue
	case schema.StateStopped:
		return StoppedValue
	case schema.StateFrozen:
		return FrozenValue
	default:
		return NotStartedValue
	}
}

// GetColorStateLabel returns a colored text label for console output.
// It uses GetPlainStateLabel to determine the string, and then applies the
// appropriate color.
func GetColorStateLabel(state schema.TimerState) string {
	text := GetPlainStateLabel(state)

	switch state {
	case schema.StateRunning:
		return RunningColor.Sprint(text)
	case schema.StateWarning:
		return WarningColor.Sprint(text)
	case schema.StateAlert:
		return AlertColor.Sprint(text)
	case schema.StateFrozen:
		return ElapsedColor.Sprint(text)
	default: // Stopped / Pending
		return IdleColor.Sprint(text)
	}
}

// StateColor returns the color used to paint countdown digits in the given
// state. Nil means uncolored.
func StateColor(state schema.TimerState) *color.Color {
	switch state {
	case schema.StateRunning:
		return RunningColor
	case schema.StateWarning:
		return WarningColor
	case schema.StateAlert:
		return AlertColor
	case schema.StateFrozen:
		return ElapsedColor
	default:
		return IdleColor
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetLogDBFilePath returns the path to the SQLite DB file for pass log storage.
func GetLogDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".passclock_log.db"
	}
	return filepath.Join(homeDir, ".passclock_log.db")
}

// ZoneAbbrev returns a short display name for a zone at a given offset in
// hours, e.g. "UTC-5" or "UTC+5.5". Whole-hour offsets drop the fraction.
func ZoneAbbrev(offsetHours float64) string {
	if offsetHours == 0 {
		return "UTC"
	}
	sign := "+"
	if offsetHours < 0 {
		sign = "-"
		offsetHours = -offsetHours
	}
	if offsetHours == float64(int(offsetHours)) {
		return fmt.Sprintf("UTC%s%d", sign, int(offsetHours))
	}
	return fmt.Sprintf("UTC%s%g", sign, offsetHours)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
