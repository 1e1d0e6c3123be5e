// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"golang.org/x/term"

	"github.com/arissops/passclock/internal/contract"
	"github.com/arissops/passclock/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the
// command layer.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WritePredicts prints the AOS/LOS predicts using the configured output format.
func (ow *OutWriter) WritePredicts(sched *schema.PassSchedule, cfg *contract.Config) error {
	return WritePredictResults(sched, cfg)
}

// WritePassLog prints recorded pass events using the configured output format.
func (ow *OutWriter) WritePassLog(events []schema.PassEvent, cfg *contract.Config) error {
	return WritePassLogResults(events, cfg)
}

// WriteClockFrame renders one frame of the live clock display to stdout.
func (ow *OutWriter) WriteClockFrame(now time.Time, sched *schema.PassSchedule, snap schema.TimerSnapshot, cfg *contract.Config) {
	WriteClockFrame(os.Stdout, now, sched, snap, cfg)
}

// GetDisplayWidth returns the width in columns the clock display should fill.
// A --width override wins; otherwise the terminal is probed, with a
// conservative default for pipes and CI.
func GetDisplayWidth(cfg *contract.Config) int {
	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		return cfg.Width
	}

	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		// Fallback to conservative default if terminal size can't be detected
		return 80
	}
	return detectedWidth
}
