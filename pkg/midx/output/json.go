package output

import (
	"bytes"
	"encoding/json"
	"time"
)

// jsonOutput represents the full JSON output structure.
type jsonOutput struct {
	Entries []jsonEntry `json:"entries"`
	Stats   jsonStats   `json:"stats"`
	Meta    jsonMeta    `json:"meta"`
}

// jsonEntry represents a library entry in JSON output.
type jsonEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Folder    string    `json:"folder,omitempty"`
	Ext       string    `json:"ext,omitempty"`
	Origin    string    `json:"origin"`
	Size      int64     `json:"size"`
	SizeHuman string    `json:"size_human"`
	ModTime   time.Time `json:"mod_time"`
}

// jsonStats represents listing statistics in JSON output.
type jsonStats struct {
	EntriesTotal  int   `json:"entries_total"`
	EntriesListed int   `json:"entries_listed"`
	TotalSize     int64 `json:"total_size"`
}

// jsonMeta represents metadata in JSON output.
type jsonMeta struct {
	Source       string   `json:"source"`
	ManifestPath string   `json:"manifest_path"`
	TotalEntries int      `json:"total_entries"`
	Warnings     []string `json:"warnings,omitempty"`
}

// JSONFormatter formats output as a single indented JSON object.
// It produces a complete JSON document with entries, stats, and meta sections.
type JSONFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *JSONFormatter) Format(w *bytes.Buffer, r *Result) error {
	output := f.buildOutput(r)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildOutput converts Result to the JSON output structure.
func (f *JSONFormatter) buildOutput(r *Result) jsonOutput {
	entries := make([]jsonEntry, len(r.Entries))
	for i, entry := range r.Entries {
		entries[i] = buildJSONEntry(entry)
	}

	stats := jsonStats{
		EntriesTotal:  r.Stats.EntriesTotal,
		EntriesListed: r.Stats.EntriesListed,
		TotalSize:     r.Stats.TotalSize,
	}

	meta := jsonMeta{
		Source:       r.Source,
		ManifestPath: r.ManifestPath,
		TotalEntries: r.TotalEntries,
		Warnings:     r.Warnings,
	}

	return jsonOutput{
		Entries: entries,
		Stats:   stats,
		Meta:    meta,
	}
}

// buildJSONEntry converts an EntryInfo to its JSON representation.
func buildJSONEntry(entry EntryInfo) jsonEntry {
	return jsonEntry{
		ID:        entry.ID,
		Name:      entry.Name,
		Path:      entry.Path,
		Folder:    entry.Folder,
		Ext:       entry.Ext,
		Origin:    entry.Origin,
		Size:      entry.Size,
		SizeHuman: entry.SizeHuman,
		ModTime:   entry.ModTime,
	}
}

func init() {
	Register("json", func() Formatter {
		return &JSONFormatter{}
	})
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)

// JSONLFormatter formats output as newline-delimited JSON (one object per line).
// Each entry is written as a compact JSON object on its own line.
// This format is suitable for streaming processing with tools like jq.
type JSONLFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *JSONLFormatter) Format(w *bytes.Buffer, r *Result) error {
	for _, entry := range r.Entries {
		data, err := json.Marshal(buildJSONEntry(entry))
		if err != nil {
			return err
		}
		w.Write(data)
		w.WriteByte('\n')
	}
	return nil
}

func init() {
	Register("jsonl", func() Formatter {
		return &JSONLFormatter{}
	})
}

// Ensure JSONLFormatter implements Formatter.
var _ Formatter = (*JSONLFormatter)(nil)
