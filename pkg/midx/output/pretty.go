package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pianoroll/midx/pkg/midx/types"
)

// PrettyFormatter formats output with colors and styling using lipgloss.
// It produces a visually appealing output suitable for terminal display.
type PrettyFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PrettyFormatter) Format(w *bytes.Buffer, r *Result) error {
	// Build header
	header := f.formatHeader(r)
	w.WriteString(header)
	w.WriteString("\n")

	// Build entry table
	table := f.formatTable(r)
	w.WriteString(table)

	// Build footer
	footer := f.formatFooter(r)
	w.WriteString(footer)

	// Add warnings if any
	if len(r.Warnings) > 0 {
		warnings := f.formatWarnings(r.Warnings)
		w.WriteString("\n")
		w.WriteString(warnings)
	}

	return nil
}

// formatHeader builds the header box with library metadata.
func (f *PrettyFormatter) formatHeader(r *Result) string {
	var lines []string

	libraryLabel := LabelStyle.Render("Library:")
	libraryValue := ValueStyle.Render(r.Source)
	lines = append(lines, fmt.Sprintf("%s %s", libraryLabel, libraryValue))

	manifestLabel := LabelStyle.Render("Manifest:")
	manifestValue := MutedStyle.Render(r.ManifestPath)
	lines = append(lines, fmt.Sprintf("%s %s", manifestLabel, manifestValue))

	content := strings.Join(lines, "\n")
	return HeaderBox.Render(content)
}

// formatTable builds the entry table with NAME, SIZE, and PATH columns.
func (f *PrettyFormatter) formatTable(r *Result) string {
	if len(r.Entries) == 0 {
		return MutedStyle.Render("  No entries found matching criteria\n")
	}

	var sb strings.Builder

	// Column widths from content
	maxNameWidth := len("NAME")
	maxSizeWidth := len("SIZE")
	for _, entry := range r.Entries {
		if len(entry.Name) > maxNameWidth {
			maxNameWidth = len(entry.Name)
		}
		if len(entry.SizeHuman) > maxSizeWidth {
			maxSizeWidth = len(entry.SizeHuman)
		}
	}

	// Column headers
	nameHeader := TableHeaderStyle.Render(padRight("NAME", maxNameWidth))
	sizeHeader := TableHeaderStyle.Render(padLeft("SIZE", maxSizeWidth))
	pathHeader := TableHeaderStyle.Render("PATH")
	sb.WriteString(fmt.Sprintf("  %s  %s  %s\n", nameHeader, sizeHeader, pathHeader))

	// Entry rows
	for _, entry := range r.Entries {
		nameStr := NameStyle.Render(padRight(entry.Name, maxNameWidth))
		sizeStr := SizeStyle.Render(padLeft(entry.SizeHuman, maxSizeWidth))
		pathStr := PathStyle.Render(entry.Path)
		sb.WriteString(fmt.Sprintf("  %s  %s  %s\n", nameStr, sizeStr, pathStr))
	}

	return sb.String()
}

// formatFooter builds the footer box with summary information.
func (f *PrettyFormatter) formatFooter(r *Result) string {
	var parts []string

	// Entry count, with filtered count when it differs
	entriesLabel := LabelStyle.Render("Entries:")
	entriesText := fmt.Sprintf("%d", r.Stats.EntriesListed)
	if r.Stats.EntriesListed != r.Stats.EntriesTotal {
		entriesText = fmt.Sprintf("%d of %d", r.Stats.EntriesListed, r.Stats.EntriesTotal)
	}
	parts = append(parts, fmt.Sprintf("%s %s", entriesLabel, ValueStyle.Render(entriesText)))

	// Total size of listed entries
	totalLabel := LabelStyle.Render("Total:")
	totalValue := SizeStyle.Render(types.FormatSize(r.Stats.TotalSize))
	parts = append(parts, fmt.Sprintf("%s %s", totalLabel, totalValue))

	// Hints
	hint := MutedStyle.Render("Use -o plain for unformatted output")
	parts = append(parts, hint)

	content := strings.Join(parts, "  ")
	return FooterBox.Render(content)
}

// formatWarnings builds a warning block.
func (f *PrettyFormatter) formatWarnings(warnings []string) string {
	var sb strings.Builder

	titleStyle := WarningStyle.Bold(true)
	sb.WriteString(titleStyle.Render("Warnings:"))
	sb.WriteString("\n")

	for _, warning := range warnings {
		sb.WriteString(WarningStyle.Render("  " + warning))
		sb.WriteString("\n")
	}

	return sb.String()
}

// padLeft pads a string with spaces on the left to achieve the desired width.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// padRight pads a string with spaces on the right to achieve the desired width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func init() {
	Register("pretty", func() Formatter {
		return &PrettyFormatter{}
	})
}

// Ensure PrettyFormatter implements Formatter.
var _ Formatter = (*PrettyFormatter)(nil)
