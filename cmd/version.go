package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

// versionCmd shows the verbose version for diagnostic purposes.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of passclock.",
	Long: `Display the release version, git commit, build timestamp and Go
runtime of this binary.

Include this output when reporting a schedule parsing problem or a
display glitch, and use it to confirm every station at a multi-station
event is running the same build before the contact.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("passclock CLI\n")
		cmd.Printf("  Version: %s\n", version)
		cmd.Printf("  Commit:  %s\n", commit)
		cmd.Printf("  Built:   %s\n", date)
		cmd.Printf("  Runtime: %s\n", runtime.Version())
	},
}
