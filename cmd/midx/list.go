package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pianoroll/midx/pkg/midx/config"
	"github.com/pianoroll/midx/pkg/midx/library"
	"github.com/pianoroll/midx/pkg/midx/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List manifest entries",
	Long: `Load the manifest as a library and list its entries.

Entries can be filtered by extension, folder, and glob patterns, sorted,
and rendered in a range of formats. The default format is pretty when
stdout is a terminal and plain otherwise.

Examples:
  midx list                        # Pretty table of all entries
  midx list --folder jazz          # Entries under jazz/
  midx list --sort size --limit 10 # Ten largest files
  midx list -o paths               # One relative path per line
  midx list -o tree                # Folder tree with counts`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringP("output", "o", "", "output format (pretty, plain, json, jsonl, yaml, paths, null, tsv, csv, markdown, template, tree)")
	listCmd.Flags().String("template", "", "Go template for -o template")
	listCmd.Flags().String("ext", "", "comma-separated extensions to include (e.g., .mid,.midi)")
	listCmd.Flags().String("include", "", "comma-separated glob patterns entries must match")
	listCmd.Flags().String("exclude", "", "comma-separated glob patterns to exclude")
	listCmd.Flags().String("folder", "", "restrict to a folder and its subfolders")
	listCmd.Flags().String("sort", "", "sort field (name, path, size)")
	listCmd.Flags().Bool("reverse", false, "reverse the sort order")
	listCmd.Flags().IntP("limit", "l", 0, "maximum number of entries (0=all)")

	_ = viper.BindPFlag("output", listCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("template", listCmd.Flags().Lookup("template"))
	_ = viper.BindPFlag("ext", listCmd.Flags().Lookup("ext"))
	_ = viper.BindPFlag("include", listCmd.Flags().Lookup("include"))
	_ = viper.BindPFlag("exclude", listCmd.Flags().Lookup("exclude"))
	_ = viper.BindPFlag("folder", listCmd.Flags().Lookup("folder"))
	_ = viper.BindPFlag("sort", listCmd.Flags().Lookup("sort"))
	_ = viper.BindPFlag("reverse", listCmd.Flags().Lookup("reverse"))
	_ = viper.BindPFlag("limit", listCmd.Flags().Lookup("limit"))

	rootCmd.AddCommand(listCmd)
}

// runList loads the library, applies the filter flags, and renders the
// result with the selected formatter.
func runList(cmd *cobra.Command, _ []string) error {
	expandedRoot, err := config.ExpandPath(viper.GetString("root"))
	if err != nil {
		return fmt.Errorf("failed to expand root path: %w", err)
	}

	expandedManifest, err := config.ExpandPath(viper.GetString("manifest"))
	if err != nil {
		return fmt.Errorf("failed to expand manifest path: %w", err)
	}

	// Build filter from CLI flags
	f, err := buildFilter()
	if err != nil {
		return fmt.Errorf("failed to build filter: %w", err)
	}

	// Resolve the output format. An explicit -o always wins; the pretty
	// default degrades to plain when stdout is not a terminal.
	outFormat := viper.GetString("output")
	if outFormat == "" {
		outFormat = config.DefaultOutputFormat
	}
	if !cmd.Flags().Changed("output") && outFormat == config.DefaultOutputFormat &&
		!isatty.IsTerminal(os.Stdout.Fd()) {
		outFormat = "plain"
	}

	var formatter output.Formatter
	if outFormat == "template" {
		// Handle custom template format
		tmplStr := viper.GetString("template")
		if tmplStr == "" {
			return fmt.Errorf("--template is required when using -o template")
		}
		formatter = output.NewTemplateFormatter(tmplStr)
	} else {
		formatter, err = output.Get(outFormat)
		if err != nil {
			return fmt.Errorf("unknown output format %q: available formats are %v", outFormat, output.Available())
		}
	}

	lib, err := library.Load(expandedRoot, expandedManifest)
	if err != nil {
		return err
	}

	entries := f.Apply(lib.Entries())
	result := output.BuildResult(entries, lib.Len(), expandedRoot, expandedManifest, lib.Warnings())

	// Output results
	var buf bytes.Buffer
	if err := formatter.Format(&buf, result); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Print(buf.String())

	return nil
}
