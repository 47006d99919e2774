package main

import (
	"fmt"

	"github.com/pianoroll/midx/pkg/midx/config"
	"github.com/pianoroll/midx/pkg/midx/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initializeLogging is the PersistentPreRunE hook for all commands.
// It ensures the config directory exists and opens the log file under the
// XDG state directory before any command body runs.
func initializeLogging(_ *cobra.Command, _ []string) error {
	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	level := viper.GetString("logging.level")
	if level == "" {
		level = config.DefaultLogLevel
	}

	cfg := logging.Config{
		Level: level,
		Path:  viper.GetString("logging.path"),
	}

	// Verbose runs mirror debug logs to stderr.
	if getVerbose() && !getQuiet() {
		cfg.ConsoleLevel = "debug"
	}

	if err := logging.Init(cfg); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	return nil
}
