package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arissops/passclock/core"
	"github.com/arissops/passclock/internal/contract"
	"github.com/arissops/passclock/internal/passlog"
	"github.com/arissops/passclock/schema"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "passclock",
	Short:              "Countdown clock for scheduled ISS contacts.",
	Long:               `Passclock tracks a single scheduled ISS pass and shows AOS/LOS countdowns next to local, UTC and school wall clocks.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Set config file name and paths
		viper.SetConfigName(".passclock") // Name of config file (without extension)
		viper.SetConfigType("yaml")       // We'll use YAML format
		viper.AddConfigPath(".")          // Look in the current directory
		viper.AddConfigPath("$HOME")      // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("PASSCLOCK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("schedule", contract.DefaultSchedulePath)
	viper.SetDefault("refresh", contract.DefaultRefreshMS)
	viper.SetDefault("width", 0)
	viper.SetDefault("color", "yes")
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("log-limit", contract.DefaultLogLimit)
	viper.SetDefault("log-backend", schema.SQLiteBackend)
	viper.SetDefault("log-db-connect", "")
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ context.Context, _ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run all validation and complex parsing.
	// This function now populates the global 'cfg' from 'input'.
	if err := contract.ProcessAndValidate(cfg, input, time.Local); err != nil {
		return err
	}

	// 4. Initialize the pass log with validated config
	if err := passlog.InitLogging(cfg.LogBackend, cfg.LogDBConnect); err != nil {
		return fmt.Errorf("failed to initialize pass logging: %w", err)
	}

	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// loadSchedule reads and parses the configured schedule file. When autoCreate
// is set a missing file is replaced with the documented sample so a classroom
// machine always has something to run, matching the historical behavior.
func loadSchedule(autoCreate bool) (*schema.PassSchedule, []schema.ScheduleError, error) {
	if autoCreate {
		if _, err := os.Stat(cfg.SchedulePath); os.IsNotExist(err) {
			contract.LogWarn("Schedule file missing, creating sample", fmt.Errorf("path %s", cfg.SchedulePath))
			if err := contract.WriteDefaultScheduleFile(cfg.SchedulePath); err != nil {
				return nil, nil, err
			}
		}
	}

	return core.LoadFile(cfg.SchedulePath, cfg.Location)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
