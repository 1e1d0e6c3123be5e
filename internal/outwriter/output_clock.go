package outwriter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/arissops/passclock/internal/contract"
	"github.com/arissops/passclock/schema"
)

// clearScreen is emitted at the top of every frame so the repaint loop draws
// over the previous one.
const clearScreen = "\033[H\033[2J"

// Background color variants for the timer states.
var (
	runningBg = color.New(color.FgBlack, color.BgGreen)
	warningBg = color.New(color.FgBlack, color.BgYellow)
	alertBg   = color.New(color.FgWhite, color.BgRed)
	elapsedBg = color.New(color.FgBlack, color.BgHiYellow)
	idleBg    = color.New(color.FgWhite, color.BgBlack)
)

// stateBackground returns the background color used when --no-background is
// not set.
func stateBackground(state schema.TimerState) *color.Color {
	switch state {
	case schema.StateRunning:
		return runningBg
	case schema.StateWarning:
		return warningBg
	case schema.StateAlert:
		return alertBg
	case schema.StateFrozen:
		return elapsedBg
	default:
		return idleBg
	}
}

// paintTimer colors a timer value according to its state and the configured
// cosmetic toggles.
func paintTimer(value string, state schema.TimerState, cfg *contract.Config) string {
	if !cfg.Color || cfg.BWTimers {
		return value
	}
	if cfg.Background {
		return stateBackground(state).Sprint(" " + value + " ")
	}
	return contract.StateColor(state).Sprint(value)
}

// timerValue formats the display value for one timer, applying the zero floor
// and the pre-AOS placeholders.
func timerValue(snap schema.TimerSnapshot, which string) string {
	switch which {
	case "AOS":
		return schema.FormatCountdown(snap.AOSRemainingSec)
	case "LOS":
		if snap.LOSState == schema.StateNotStarted {
			return schema.ShortPlaceholder
		}
		return schema.FormatShortCountdown(snap.LOSRemainingSec)
	default: // elapsed
		if snap.ElapsedState == schema.StateNotStarted {
			return schema.ShortPlaceholder
		}
		return schema.FormatShortCountdown(snap.ElapsedSec)
	}
}

// RenderClockLines builds the full set of display lines for one frame.
// Separated from WriteClockFrame so tests can assert on content without a
// terminal.
func RenderClockLines(now time.Time, sched *schema.PassSchedule, snap schema.TimerSnapshot, cfg *contract.Config) []string {
	timers := []string{
		timerLine("AOS", timerValue(snap, "AOS"), snap.AOSState, cfg),
		timerLine("LOS", timerValue(snap, "LOS"), snap.LOSState, cfg),
		timerLine("ET", timerValue(snap, "ET"), snap.ElapsedState, cfg),
	}

	local := now.In(cfg.Location)
	clocks := []string{
		clockLine("Local", schema.FormatClock(local)+" "+zoneName(local), cfg),
		clockLine("UTC", schema.FormatClock(now.UTC()), cfg),
	}
	if cfg.SchoolClock {
		school := sched.SchoolTime(now)
		clocks = append(clocks, clockLine("School",
			schema.FormatClock(school)+" "+contract.ZoneAbbrev(sched.SchoolOffsetHours), cfg))
	}

	var lines []string
	if cfg.TimersTop {
		lines = append(lines, timers...)
		lines = append(lines, "")
		lines = append(lines, clocks...)
	} else {
		lines = append(lines, clocks...)
		lines = append(lines, "")
		lines = append(lines, timers...)
	}
	return lines
}

// timerLine assembles one timer row with an optional label.
func timerLine(label, value string, state schema.TimerState, cfg *contract.Config) string {
	painted := paintTimer(value, state, cfg)
	if !cfg.Labels {
		return painted
	}
	return fmt.Sprintf("%-6s %s", label, painted)
}

// clockLine assembles one wall-clock row with an optional label.
func clockLine(label, value string, cfg *contract.Config) string {
	if !cfg.Labels {
		return value
	}
	return fmt.Sprintf("%-6s %s", label, value)
}

// zoneName extracts the local zone abbreviation, e.g. "EST".
func zoneName(t time.Time) string {
	name, _ := t.Zone()
	return name
}

// WriteClockFrame clears the screen and writes one centered frame.
func WriteClockFrame(w io.Writer, now time.Time, sched *schema.PassSchedule, snap schema.TimerSnapshot, cfg *contract.Config) {
	width := GetDisplayWidth(cfg)
	fmt.Fprint(w, clearScreen)
	for _, line := range RenderClockLines(now, sched, snap, cfg) {
		fmt.Fprintln(w, centerLine(line, width))
	}
}

// centerLine pads a line into the middle of the display width. ANSI escape
// sequences are excluded from the visible length.
func centerLine(line string, width int) string {
	visible := visibleLength(line)
	if visible >= width {
		return line
	}
	return strings.Repeat(" ", (width-visible)/2) + line
}

// visibleLength counts printable characters, skipping ANSI color sequences.
func visibleLength(s string) int {
	count := 0
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\033':
			inEscape = true
		default:
			count++
		}
	}
	return count
}
