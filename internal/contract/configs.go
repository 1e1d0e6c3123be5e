package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/arissops/passclock/schema"
)

// Default values for configuration.
const (
	DefaultSchedulePath = "passclock_config.txt"
	DefaultReadmePath   = "passclock_readme.txt"
	DefaultRefreshMS    = 100
	MinRefreshMS        = 10
	MaxRefreshMS        = 10000
	DefaultLogLimit     = 20
	MaxLogLimit         = 1000
)

// Config holds the validated runtime configuration for the clock display.
// Fields requiring parsing or range checks are set by ProcessAndValidate
// after flags, env and config file are merged by Viper. Built once at
// startup, read-only thereafter.
type Config struct {
	SchedulePath string                 // Path to the AOS/LOS schedule file
	Refresh      time.Duration          // Repaint cadence for the clock display
	Width        int                    // Terminal width override (0 = auto-detect)
	Color        bool                   // Colored output at all
	BWTimers     bool                   // Timers in black & white only
	Background   bool                   // Paint state colors as backgrounds, not just foregrounds
	Labels       bool                   // Show timer/clock labels
	SchoolClock  bool                   // Show the school time clock
	TimersTop    bool                   // Timers above the clocks
	Output       schema.OutputMode      // Output format for predicts/log commands
	OutputFile   string                 // Optional path to write output to
	LogLimit     int                    // Max events shown by log list
	LogBackend   schema.DatabaseBackend // Pass log backend
	LogDBConnect string                 // Connection string for mysql/postgresql backends
	Location     *time.Location         // Station-local zone used to resolve schedule timestamps
}

// ConfigRawInput holds the raw, unvalidated values merged by Viper from
// defaults, config file, environment and flags.
type ConfigRawInput struct {
	Schedule     string `mapstructure:"schedule"`
	Refresh      int    `mapstructure:"refresh"`
	Width        int    `mapstructure:"width"`
	Color        string `mapstructure:"color"`
	BW           bool   `mapstructure:"bw"`
	NoBackground bool   `mapstructure:"no-background"`
	NoLabels     bool   `mapstructure:"no-labels"`
	NoSchool     bool   `mapstructure:"no-school"`
	Bottom       bool   `mapstructure:"bottom"`
	Output       string `mapstructure:"output"`
	OutputFile   string `mapstructure:"output-file"`
	LogLimit     int    `mapstructure:"log-limit"`
	LogBackend   string `mapstructure:"log-backend"`
	LogDBConnect string `mapstructure:"log-db-connect"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct. The station zone is injected by the
// caller so tests can pin a fixed zone instead of depending on the host.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput, loc *time.Location) error {
	// --- 1. Schedule path ---
	cfg.SchedulePath = input.Schedule
	if cfg.SchedulePath == "" {
		cfg.SchedulePath = DefaultSchedulePath
	}

	// --- 2. Refresh cadence ---
	if input.Refresh < MinRefreshMS || input.Refresh > MaxRefreshMS {
		return fmt.Errorf("refresh must be between %d and %d ms (received %d)", MinRefreshMS, MaxRefreshMS, input.Refresh)
	}
	cfg.Refresh = time.Duration(input.Refresh) * time.Millisecond

	// --- 3. Width ---
	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	// --- 4. Color and cosmetic toggles ---
	colorOn, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color value: %w", err)
	}
	cfg.Color = colorOn
	cfg.BWTimers = input.BW
	cfg.Background = !input.NoBackground
	cfg.Labels = !input.NoLabels
	cfg.SchoolClock = !input.NoSchool
	cfg.TimersTop = !input.Bottom

	// --- 5. Output validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	// --- 6. Log limit ---
	if input.LogLimit <= 0 || input.LogLimit > MaxLogLimit {
		return fmt.Errorf("log-limit must be greater than 0 and cannot exceed %d (received %d)", MaxLogLimit, input.LogLimit)
	}
	cfg.LogLimit = input.LogLimit

	// --- 7. Pass log backend ---
	cfg.LogBackend = schema.DatabaseBackend(strings.ToLower(input.LogBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.LogBackend]; !ok {
		return fmt.Errorf("invalid log backend '%s'. must be sqlite, mysql, postgresql, none", input.LogBackend)
	}
	cfg.LogDBConnect = input.LogDBConnect
	if err := ValidateDatabaseConnectionString(cfg.LogBackend, cfg.LogDBConnect); err != nil {
		return err
	}

	// --- 8. Station zone ---
	if loc == nil {
		loc = time.Local
	}
	cfg.Location = loc

	return nil
}

// ValidateDatabaseConnectionString checks that server backends come with a
// connection string. SQLite and none need no connection details.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("mysql backend requires --log-db-connect (format: user:pass@tcp(host:port)/dbname)")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("postgresql backend requires --log-db-connect (format: host=... port=... user=... dbname=...)")
		}
	}
	return nil
}
