package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arissops/passclock/internal/contract"
)

// initCmd writes the sample schedule and readme files.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample schedule file and readme",
	Long: `Write a sample schedule file and a companion readme to the current
directory (or the --schedule path).

The sample schedule carries the documented defaults; edit the AOS and
LOS lines with the times for your scheduled contact. Refuses to
overwrite an existing schedule file.

Examples:
  # Create passclock_config.txt and passclock_readme.txt
  passclock init

  # Create the schedule at a custom path
  passclock init --schedule /etc/passclock/schedule.txt`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := contract.WriteDefaultScheduleFile(cfg.SchedulePath); err != nil {
			contract.LogFatal("Failed to create schedule file", err)
		}
		fmt.Printf("Created schedule file: %s\n", cfg.SchedulePath)

		if err := contract.WriteReadmeFile(contract.DefaultReadmePath); err != nil {
			contract.LogFatal("Failed to create readme file", err)
		}
		fmt.Printf("Created readme file: %s\n", contract.DefaultReadmePath)
	},
}
