package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arissops/passclock/internal/contract"
	"github.com/arissops/passclock/schema"
)

// checkMessages maps each schedule error kind to an operator-facing message.
var checkMessages = map[schema.ScheduleErrorKind]string{
	schema.InvalidAOSError:   "AOS is missing or not a valid YYYY-MM-DD HH:mm:ss timestamp",
	schema.InvalidLOSError:   "LOS is missing or not a valid YYYY-MM-DD HH:mm:ss timestamp",
	schema.LOSBeforeAOSError: "LOS does not come after AOS; both replaced with defaults",
}

// checkCmd validates the schedule file before a contact.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the schedule file (fails with non-zero exit on problems)",
	Long: `Parse the schedule file and report every problem found.

The display commands substitute documented defaults for bad values so
they never refuse to start; check is the strict counterpart for
pre-contact verification and scripted gates. Any problem exits non-zero.

Examples:
  # Verify before the contact
  passclock check

  # Gate a deployment script
  passclock check --schedule /etc/passclock/schedule.txt || exit 1`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		sched, errs, err := loadSchedule(false)
		if err != nil {
			contract.LogFatal("Failed to read schedule file", err)
		}

		if len(errs) == 0 {
			fmt.Printf("Schedule OK: AOS %s, LOS %s (%v pass)\n",
				schema.FormatInstant(sched.AOS), schema.FormatInstant(sched.LOS), sched.Duration())
			return
		}

		for _, e := range errs {
			msg := checkMessages[e.Kind]
			if e.Detail != "" {
				fmt.Fprintf(os.Stderr, "Problem: %s (got %q)\n", msg, e.Detail)
			} else {
				fmt.Fprintf(os.Stderr, "Problem: %s\n", msg)
			}
		}
		fmt.Fprintf(os.Stderr, "Schedule has %d problem(s)\n", len(errs))
		os.Exit(1)
	},
}
