// Package scanner provides deterministic directory scanning for the midx
// manifest generator. Traversal is serial with per-directory lexical
// ordering, so repeated scans over an unchanged tree visit files in a
// stable order.
package scanner

import (
	"strings"

	"github.com/pianoroll/midx/pkg/midx/config"
)

// DefaultExtensions contains the file extensions recognized as MIDI assets.
var DefaultExtensions = []string{".mid", ".midi"}

// Options configures the scanner behavior.
type Options struct {
	// Root is the starting directory for the scan.
	Root string

	// Extensions contains the file extensions to match, compared
	// case-insensitively against each file's extension.
	// Empty uses DefaultExtensions.
	Extensions []string
}

// Validate checks if the options are valid and applies defaults.
func (o *Options) Validate() error {
	if o.Root == "" {
		o.Root = config.DefaultRoot
	}
	if len(o.Extensions) == 0 {
		o.Extensions = DefaultExtensions
	}
	return nil
}

// normalizeExtensions builds a lookup set from the configured extensions.
// Each extension is lowercased and given a leading dot if missing.
func normalizeExtensions(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	return set
}
