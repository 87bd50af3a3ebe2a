package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// CLI flags shared by every subcommand
	dataPath     string // Dataset file (.json, .csv, .db/.sqlite)
	eventKey     string // Event key selecting rows of a SQLite dataset
	gamePath     string // Game scoring YAML; built-in 2024 rules when empty
	logLevel     string // Log verbosity level
	outputFormat string // text or json
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "falconvis",
	Short: "Scouting statistics and match predictions for FRC events",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if outputFormat != formatText && outputFormat != formatJSON {
			logrus.Fatalf("Invalid output format %q (want %s or %s)", outputFormat, formatText, formatJSON)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Scouting dataset (.json, .csv, .db or .sqlite)")
	rootCmd.PersistentFlags().StringVar(&eventKey, "event", "", "Event key to read from a SQLite dataset (all events when empty)")
	rootCmd.PersistentFlags().StringVar(&gamePath, "game", "", "Game scoring config YAML (default: built-in 2024 rules)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", formatText, "Output format (text, json)")

	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(picklistCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(importCmd)
}
