package output

import (
	"bytes"
	"time"

	"gopkg.in/yaml.v3"
)

// yamlOutput represents the full YAML output structure.
type yamlOutput struct {
	Entries []yamlEntry `yaml:"entries"`
	Stats   yamlStats   `yaml:"stats"`
	Meta    yamlMeta    `yaml:"meta"`
}

// yamlEntry represents a library entry in YAML output.
type yamlEntry struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	Path      string    `yaml:"path"`
	Folder    string    `yaml:"folder,omitempty"`
	Ext       string    `yaml:"ext,omitempty"`
	Origin    string    `yaml:"origin"`
	Size      int64     `yaml:"size"`
	SizeHuman string    `yaml:"size_human"`
	ModTime   time.Time `yaml:"mod_time"`
}

// yamlStats represents listing statistics in YAML output.
type yamlStats struct {
	EntriesTotal  int   `yaml:"entries_total"`
	EntriesListed int   `yaml:"entries_listed"`
	TotalSize     int64 `yaml:"total_size"`
}

// yamlMeta represents metadata in YAML output.
type yamlMeta struct {
	Source       string   `yaml:"source"`
	ManifestPath string   `yaml:"manifest_path"`
	TotalEntries int      `yaml:"total_entries"`
	Warnings     []string `yaml:"warnings,omitempty"`
}

// YAMLFormatter formats output as YAML.
// It produces the same structure as JSONFormatter but in YAML format.
type YAMLFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *YAMLFormatter) Format(w *bytes.Buffer, r *Result) error {
	output := f.buildOutput(r)

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(output); err != nil {
		return err
	}
	return encoder.Close()
}

// buildOutput converts Result to the YAML output structure.
func (f *YAMLFormatter) buildOutput(r *Result) yamlOutput {
	entries := make([]yamlEntry, len(r.Entries))
	for i, entry := range r.Entries {
		entries[i] = yamlEntry{
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

	stats := yamlStats{
		EntriesTotal:  r.Stats.EntriesTotal,
		EntriesListed: r.Stats.EntriesListed,
		TotalSize:     r.Stats.TotalSize,
	}

	meta := yamlMeta{
		Source:       r.Source,
		ManifestPath: r.ManifestPath,
		TotalEntries: r.TotalEntries,
		Warnings:     r.Warnings,
	}

	return yamlOutput{
		Entries: entries,
		Stats:   stats,
		Meta:    meta,
	}
}

func init() {
	Register("yaml", func() Formatter {
		return &YAMLFormatter{}
	})
}

// Ensure YAMLFormatter implements Formatter.
var _ Formatter = (*YAMLFormatter)(nil)
