// Package cmd defines the command-line interface for passclock.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arissops/passclock/internal/contract"
	"github.com/arissops/passclock/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(predictsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the log subcommands to the parent log command
	logCmd.AddCommand(logListCmd)
	logCmd.AddCommand(logClearCmd)
	logCmd.AddCommand(logStatusCmd)
	logCmd.AddCommand(logExportCmd)
	logCmd.AddCommand(logMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("schedule", "f", contract.DefaultSchedulePath, "Path to the AOS/LOS schedule file")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("log-backend", string(schema.SQLiteBackend), "Pass log backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("log-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of runCmd to Viper
	runCmd.Flags().Int("refresh", contract.DefaultRefreshMS, "Display refresh interval in milliseconds")
	runCmd.Flags().Bool("bw", false, "Render the timers in black and white")
	runCmd.Flags().Bool("no-background", false, "Disable background colors on the timers")
	runCmd.Flags().Bool("no-labels", false, "Hide the timer and clock labels")
	runCmd.Flags().Bool("no-school", false, "Hide the school time clock")
	runCmd.Flags().Bool("bottom", false, "Place the timers below the clocks")
	if err := viper.BindPFlags(runCmd.Flags()); err != nil {
		contract.LogFatal("Error binding run flags", err)
	}

	// Bind all flags of logListCmd to Viper
	logListCmd.Flags().Int("log-limit", contract.DefaultLogLimit, "Maximum number of events to list")
	if err := viper.BindPFlags(logListCmd.Flags()); err != nil {
		contract.LogFatal("Error binding log list flags", err)
	}

	// Bind all flags of logMigrateCmd to Viper
	logMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(logMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding log migrate flags", err)
	}
}
