package core

import (
	"time"

	"github.com/arissops/passclock/schema"
)

// Tick derives a TimerSnapshot for the given instant and schedule. It is a
// pure function of its inputs: no hidden state, no clamping of the signed
// values, and identical inputs always produce identical snapshots. The display
// layer floors negatives to zero; the snapshot itself never does.
func Tick(now time.Time, s *schema.PassSchedule) schema.TimerSnapshot {
	aosRem := s.AOS.Sub(now).Seconds()
	losRem := s.LOS.Sub(now).Seconds()
	elapsed := now.Sub(s.AOS).Seconds()

	snap := schema.TimerSnapshot{
		AOSRemainingSec: aosRem,
		LOSRemainingSec: losRem,
		ElapsedSec:      elapsed,
	}

	switch {
	case aosRem <= 0:
		snap.AOSState = schema.StateStopped
	case aosRem <= schema.RedAlertSec:
		snap.AOSState = schema.StateAlert
	case aosRem <= schema.YellowAlertSec:
		snap.AOSState = schema.StateWarning
	default:
		snap.AOSState = schema.StateRunning
	}

	// The LOS timer is gated by AOS: it has no meaningful countdown until
	// the pass begins.
	switch {
	case aosRem > 0:
		snap.LOSState = schema.StateNotStarted
	case losRem <= 0:
		snap.LOSState = schema.StateStopped
	case losRem <= schema.RedAlertSec:
		snap.LOSState = schema.StateAlert
	default:
		snap.LOSState = schema.StateRunning
	}

	// The elapsed timer starts at AOS and freezes at LOS, holding the exact
	// total pass duration from then on.
	switch {
	case aosRem > 0:
		snap.ElapsedState = schema.StateNotStarted
	case losRem <= 0:
		snap.ElapsedState = schema.StateFrozen
		snap.ElapsedSec = s.LOS.Sub(s.AOS).Seconds()
	default:
		snap.ElapsedState = schema.StateRunning
	}

	return snap
}
