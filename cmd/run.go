package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/arissops/passclock/core"
	"github.com/arissops/passclock/internal/contract"
	"github.com/arissops/passclock/internal/outwriter"
	"github.com/arissops/passclock/internal/passlog"
	"github.com/arissops/passclock/schema"
)

// runCmd drives the live countdown display.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Show the live pass countdown display",
	Long: `Run the full-screen countdown display for the scheduled pass.

Shows the AOS countdown, the LOS countdown and the elapsed pass time next
to local, UTC and school wall clocks. The AOS timer turns yellow six
minutes before the pass and red in the final minute.

A missing schedule file is replaced with a documented sample so the
display always starts; edit the file and restart to load real times.

Press Ctrl-C to exit.

Examples:
  # Default display, 100ms refresh
  passclock run

  # Black and white timers below the clocks
  passclock run --bw --bottom

  # Slower refresh for remote terminals
  passclock run --refresh 1000`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		sched, errs, err := loadSchedule(true)
		if err != nil {
			contract.LogFatal("Failed to load schedule", err)
		}
		for _, e := range errs {
			contract.LogWarn("Schedule problem, default substituted", e)
		}

		if err := runClock(rootCtx, sched, len(errs)); err != nil {
			contract.LogFatal("Display loop failed", err)
		}
	},
}

// eventRecorder appends pass lifecycle events once per observed transition.
// The first tick only establishes a baseline, so a clock started after the
// pass does not retroactively record it.
type eventRecorder struct {
	store     contract.PassLogStore
	sched     *schema.PassSchedule
	primed    bool
	prevAOS   schema.TimerState
	prevLOS   schema.TimerState
	aosLogged bool
	losLogged bool
}

func newEventRecorder(store contract.PassLogStore, sched *schema.PassSchedule) *eventRecorder {
	return &eventRecorder{store: store, sched: sched}
}

// append writes one event, downgrading store failures to warnings so the
// display never dies because the log backend is away.
func (r *eventRecorder) append(ev schema.PassEvent) {
	if r.store == nil {
		return
	}
	if err := r.store.Append(ev); err != nil {
		contract.LogWarn("Failed to record pass event", err)
	}
}

// recordLoaded notes that a schedule was loaded for this run.
func (r *eventRecorder) recordLoaded(now time.Time, problems int) {
	r.append(schema.PassEvent{
		EventTime: now,
		EventType: schema.EventScheduleLoaded,
		AOS:       r.sched.AOS,
		LOS:       r.sched.LOS,
		Detail:    fmt.Sprintf("schedule parsed with %d problems", problems),
	})
}

// observe inspects a snapshot and records AOS/LOS transitions.
func (r *eventRecorder) observe(now time.Time, snap schema.TimerSnapshot) {
	if !r.primed {
		r.primed = true
		r.prevAOS = snap.AOSState
		r.prevLOS = snap.LOSState
		return
	}

	if !r.aosLogged && snap.AOSState == schema.StateStopped && r.prevAOS != schema.StateStopped {
		r.aosLogged = true
		r.append(schema.PassEvent{
			EventTime: now,
			EventType: schema.EventAOSReached,
			AOS:       r.sched.AOS,
			LOS:       r.sched.LOS,
		})
	}
	if !r.losLogged && snap.LOSState == schema.StateStopped && r.prevLOS != schema.StateStopped {
		r.losLogged = true
		r.append(schema.PassEvent{
			EventTime: now,
			EventType: schema.EventLOSReached,
			AOS:       r.sched.AOS,
			LOS:       r.sched.LOS,
			Detail:    fmt.Sprintf("elapsed %.0fs", snap.ElapsedSec),
		})
	}

	r.prevAOS = snap.AOSState
	r.prevLOS = snap.LOSState
}

// runClock repaints the display until interrupted.
func runClock(ctx context.Context, sched *schema.PassSchedule, problems int) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer passlog.CloseLogging()

	ow := outwriter.NewOutWriter()
	recorder := newEventRecorder(passlog.Manager.GetEventStore(), sched)
	recorder.recordLoaded(time.Now(), problems)

	// Paint immediately instead of waiting one refresh interval.
	now := time.Now()
	snap := core.Tick(now, sched)
	recorder.observe(now, snap)
	ow.WriteClockFrame(now, sched, snap, cfg)

	ticker := time.NewTicker(cfg.Refresh)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			return nil
		case now := <-ticker.C:
			snap := core.Tick(now, sched)
			recorder.observe(now, snap)
			ow.WriteClockFrame(now, sched, snap, cfg)
		}
	}
}
