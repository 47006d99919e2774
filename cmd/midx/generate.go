package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pianoroll/midx/pkg/midx/config"
	"github.com/pianoroll/midx/pkg/midx/manifest"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var generateCmd = &cobra.Command{
	Use:   "generate [root]",
	Short: "Generate the MIDI manifest",
	Long: `Scan the asset root for MIDI files and write the manifest.

The manifest is a JSON array of relative slash-separated paths, sorted
ascending, written atomically. Regenerating over an unchanged tree
produces a byte-identical file.

With --check nothing is written: a fresh scan is compared against the
manifest on disk, and any drift exits non-zero.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

// runGenerate is the manifest generation handler, shared by the bare root
// command and the explicit generate subcommand.
func runGenerate(cmd *cobra.Command, args []string) error {
	// Determine scan root
	root := viper.GetString("root")
	if len(args) > 0 {
		root = args[0]
	}

	// Expand ~ in paths
	expandedRoot, err := config.ExpandPath(root)
	if err != nil {
		return fmt.Errorf("failed to expand root path: %w", err)
	}

	expandedManifest, err := config.ExpandPath(viper.GetString("manifest"))
	if err != nil {
		return fmt.Errorf("failed to expand manifest path: %w", err)
	}

	opts := manifest.Options{
		Root: expandedRoot,
		Path: expandedManifest,
	}

	// Setup context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		printInfo("\nInterrupted, stopping scan...")
		cancel()
	}()

	if viper.GetBool("check") {
		return runCheck(ctx, opts)
	}

	printVerbose("Scanning %s", opts.Root)

	result, err := manifest.Generate(ctx, opts)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			printInfo("Scan cancelled")
			return nil
		}
		return err
	}

	printVerbose("Scanned %d directories, %d files in %v",
		result.Stats.DirsScanned, result.Stats.FilesScanned, result.Stats.Elapsed)

	printInfo("Generated manifest with %d MIDI files.", result.Count)
	return nil
}

// runCheck compares a fresh in-memory generation against the manifest on
// disk without writing anything. Drift exits non-zero for CI gates.
func runCheck(ctx context.Context, opts manifest.Options) error {
	report, err := manifest.Check(ctx, opts)
	if err != nil {
		return err
	}

	if report.InSync {
		printInfo("Manifest is up to date.")
		return nil
	}

	printInfo("Manifest is out of date:")
	if report.ManifestMissing {
		printInfo("  manifest file does not exist")
	}
	for _, path := range report.Added {
		printInfo("  + %s", path)
	}
	for _, path := range report.Removed {
		printInfo("  - %s", path)
	}
	if !report.ManifestMissing && len(report.Added) == 0 && len(report.Removed) == 0 {
		printInfo("  entries are not in sorted order")
	}

	return fmt.Errorf("manifest %s is out of date", opts.Path)
}
