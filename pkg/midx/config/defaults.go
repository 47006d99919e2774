// Package config provides configuration management for the midx manifest generator.
package config

// Default configuration values for midx.
const (
	// DefaultRoot is the directory scanned for MIDI files when none is specified.
	DefaultRoot = "assets/midi"

	// DefaultManifestPath is the manifest output path when none is specified.
	DefaultManifestPath = "assets/midi_manifest.json"

	// DefaultOutputFormat is the list output format when stdout is a terminal.
	DefaultOutputFormat = "pretty"

	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"
)
