package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arissops/passclock/internal/contract"
	"github.com/arissops/passclock/internal/outwriter"
)

// predictsCmd prints the scheduled pass window.
var predictsCmd = &cobra.Command{
	Use:   "predicts",
	Short: "Print the scheduled AOS/LOS in local, UTC and school time",
	Long: `Report the scheduled pass window from the schedule file.

Shows AOS and LOS in station local time, UTC and the school's wall clock,
plus the total pass duration. Useful for briefing the classroom and for
cross-checking against published pass predictions.

Examples:
  # Human-readable table
  passclock predicts

  # Machine-readable formats
  passclock predicts --output json
  passclock predicts --output csv --output-file pass.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		sched, errs, err := loadSchedule(false)
		if err != nil {
			contract.LogFatal("Failed to load schedule", err)
		}
		for _, e := range errs {
			contract.LogWarn("Schedule problem, default substituted", e)
		}

		if err := outwriter.NewOutWriter().WritePredicts(sched, cfg); err != nil {
			contract.LogFatal("Failed to write predicts", err)
		}
	},
}
