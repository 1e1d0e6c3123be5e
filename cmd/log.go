package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arissops/passclock/internal/contract"
	"github.com/arissops/passclock/internal/outwriter"
	"github.com/arissops/passclock/internal/passlog"
)

// logCmd focused on pass log management.
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Inspect and manage the recorded pass event log",
	Long: `Manage the log of pass lifecycle events recorded during runs.

Every run records when the schedule was loaded, when AOS was reached and
when LOS was reached. The log builds a history of contacts across runs.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  list    - Show recent events
  clear   - Remove all recorded events
  status  - Show backend statistics and connection info
  export  - Write the full event history to a Parquet file
  migrate - Run schema migrations on the log database

Examples:
  # Show the most recent events
  passclock log list

  # Share a central log between stations
  PASSCLOCK_LOG_BACKEND=postgresql PASSCLOCK_LOG_DB_CONNECT="..." passclock log list`,
}

// logListCmd lists recent events.
var logListCmd = &cobra.Command{
	Use:     "list",
	Short:   "Show recent pass events, newest first",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		events, err := passlog.Manager.GetEventStore().List(cfg.LogLimit)
		if err != nil {
			contract.LogFatal("Failed to list pass events", err)
		}
		if err := outwriter.NewOutWriter().WritePassLog(events, cfg); err != nil {
			contract.LogFatal("Failed to write pass events", err)
		}
	},
}

// logClearCmd wipes the event log.
var logClearCmd = &cobra.Command{
	Use:     "clear",
	Short:   "Remove all recorded pass events",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := passlog.Manager.GetEventStore().Clear(); err != nil {
			contract.LogFatal("Failed to clear pass log", err)
		}
		fmt.Println("Pass log cleared successfully.")
	},
}

// logStatusCmd shows store health.
var logStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Display pass log statistics and connection details",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := passlog.Manager.GetEventStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get pass log status", err)
		}
		if err := outwriter.WritePassLogStatus(os.Stdout, status); err != nil {
			contract.LogFatal("Failed to write pass log status", err)
		}
	},
}

// logExportCmd writes the event history to Parquet.
var logExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full pass event history to a Parquet file",
	Long: `Export all recorded pass events to a Parquet file for analysis.

The Parquet file can be loaded into Pandas, DuckDB, Spark or any other
Parquet-compatible tool.

Examples:
  passclock log export --output-file contacts.parquet`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := passlog.ExecutePassLogExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export pass log", err)
		}
	},
}

// logMigrateCmd runs schema migrations.
var logMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run schema migrations on the pass log database",
	Long: `Apply versioned schema migrations to the pass log database.

Examples:
  # Migrate to the latest version
  passclock log migrate

  # Roll back everything
  passclock log migrate --target-version 0`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := passlog.MigratePassLog(cfg.LogBackend, cfg.LogDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
