package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pianoroll/midx/pkg/midx/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "midx [root]",
		Short: "Generate a manifest of MIDI files",
		Long: `Midx scans a directory tree for MIDI files and writes a deterministic
JSON manifest of their relative paths.

Running midx with no subcommand generates the manifest. The scan root
defaults to assets/midi and can be overridden by the positional argument,
the MIDX_ROOT environment variable, or the config file.

Examples:
  midx                       # Scan assets/midi, write assets/midi_manifest.json
  midx sounds/midi           # Scan a specific directory
  midx -m build/manifest.json .  # Write the manifest somewhere else
  midx generate --check      # Exit 1 if the manifest is stale (CI gate)
  midx list -o json          # List manifest entries as JSON
  midx verify                # Check every manifest entry still exists`,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: initializeLogging,
		RunE:              runGenerate,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/midx/config.yaml)")
	rootCmd.PersistentFlags().StringP("manifest", "m", "", "manifest output path")
	rootCmd.PersistentFlags().Bool("check", false, "report drift against the existing manifest, write nothing")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug output")

	// Bind flags to viper
	_ = viper.BindPFlag("manifest", rootCmd.PersistentFlags().Lookup("manifest"))
	_ = viper.BindPFlag("check", rootCmd.PersistentFlags().Lookup("check"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Set config name and type
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		// Add config paths in order of precedence
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "midx"))
		}

		homeDir, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "midx"))
		}
	}

	// Set environment variable prefix and enable auto env binding
	viper.SetEnvPrefix("MIDX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// Set defaults from config package
	viper.SetDefault("root", config.DefaultRoot)
	viper.SetDefault("manifest", config.DefaultManifestPath)
	viper.SetDefault("output", config.DefaultOutputFormat)
	viper.SetDefault("logging.level", config.DefaultLogLevel)
	viper.SetDefault("logging.path", "")

	// Read config file (ignore if not found)
	_ = viper.ReadInConfig()
}

// getVerbose returns true if verbose mode is enabled.
func getVerbose() bool {
	return viper.GetBool("verbose")
}

// getQuiet returns true if quiet mode is enabled.
func getQuiet() bool {
	return viper.GetBool("quiet")
}

// printVerbose prints a message if verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if getVerbose() && !getQuiet() {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// printInfo prints a message if quiet mode is not enabled.
func printInfo(format string, args ...interface{}) {
	if !getQuiet() {
		fmt.Printf(format+"\n", args...)
	}
}

// printError prints an error message to stderr.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
