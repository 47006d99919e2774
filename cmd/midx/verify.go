package main

import (
	"fmt"

	"github.com/pianoroll/midx/pkg/midx/config"
	"github.com/pianoroll/midx/pkg/midx/manifest"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify manifest entries exist on disk",
	Long: `Resolve every manifest entry against the asset root and report entries
whose file no longer exists.

Verification is read-only: neither the manifest nor the tree is modified.`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

// runVerify checks that every manifest entry resolves to an existing file.
func runVerify(_ *cobra.Command, _ []string) error {
	expandedRoot, err := config.ExpandPath(viper.GetString("root"))
	if err != nil {
		return fmt.Errorf("failed to expand root path: %w", err)
	}

	expandedManifest, err := config.ExpandPath(viper.GetString("manifest"))
	if err != nil {
		return fmt.Errorf("failed to expand manifest path: %w", err)
	}

	report, err := manifest.Verify(expandedRoot, expandedManifest)
	if err != nil {
		return err
	}

	for _, path := range report.Missing {
		printInfo("missing: %s", path)
	}

	if !report.OK() {
		return fmt.Errorf("%d of %d manifest entries missing under %s",
			len(report.Missing), report.Total, expandedRoot)
	}

	printInfo("All %d manifest entries present.", report.Total)
	return nil
}
