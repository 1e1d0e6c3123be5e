package schema

import (
	"fmt"
	"time"
)

// ShortPlaceholder is shown for the LOS and elapsed timers before AOS, when
// neither has a meaningful value yet.
const ShortPlaceholder = "__:__"

// Seconds per display period.
const (
	secondsPerDay  = 24 * 60 * 60
	secondsPerHour = 60 * 60
)

// FormatCountdown renders a remaining-seconds value as HH:MM:SS for the AOS
// countdown. Negative values floor at zero. Values beyond 24 hours wrap
// modulo one day: the display intentionally shows only hours, minutes and
// seconds, matching the clock face, so a countdown further than a day out
// appears to roll over. This is a display simplification only; the underlying
// snapshot keeps the full signed value.
func FormatCountdown(sec float64) string {
	s := int64(sec)
	if s <= 0 {
		return "00:00:00"
	}
	s %= secondsPerDay
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}

// FormatShortCountdown renders a seconds value as MM:SS for the LOS countdown
// and elapsed timers. Negative values floor at zero; values beyond an hour
// wrap modulo one hour, as ISS passes run about ten minutes.
func FormatShortCountdown(sec float64) string {
	s := int64(sec)
	if s <= 0 {
		return "00:00"
	}
	s %= secondsPerHour
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// FormatClock renders a wall-clock instant as HH:MM:SS.
func FormatClock(t time.Time) string {
	return t.Format("15:04:05")
}

// FormatInstant renders an absolute instant in the schedule file's timestamp
// layout, for reporting AOS/LOS predicts.
func FormatInstant(t time.Time) string {
	return t.Format(ConfigTimeLayout)
}
