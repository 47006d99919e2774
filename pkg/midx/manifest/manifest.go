// Package manifest implements generation and inspection of the MIDI asset
// manifest: a deterministic JSON array of relative file paths, sorted by
// plain byte-wise string comparison. The manifest is a pure function of the
// filesystem state under the root, so regenerating over an unchanged tree
// produces a byte-identical file.
package manifest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pianoroll/midx/pkg/midx/config"
	"github.com/pianoroll/midx/pkg/midx/logging"
	"github.com/pianoroll/midx/pkg/midx/scanner"
	"github.com/pianoroll/midx/pkg/midx/types"
)

// Options configures manifest generation.
type Options struct {
	// Root is the directory scanned for MIDI files.
	Root string

	// Path is where the manifest is written.
	Path string

	// Extensions overrides the matched extension set.
	// Empty uses scanner.DefaultExtensions.
	Extensions []string
}

// Validate checks if the options are valid and applies defaults.
func (o *Options) Validate() error {
	if o.Root == "" {
		o.Root = config.DefaultRoot
	}
	if o.Path == "" {
		o.Path = config.DefaultManifestPath
	}
	return nil
}

// Result contains the outcome of a manifest generation.
type Result struct {
	// Paths is the sorted manifest body.
	Paths []string

	// Count is the number of manifest entries.
	Count int

	// Root is the directory that was scanned.
	Root string

	// Path is where the manifest was written.
	Path string

	// Stats carries traversal statistics from the scan.
	Stats *types.ScanResult
}

// Generate scans the root, sorts the matched paths, and atomically writes
// the manifest file. Any scan error aborts before anything is written; any
// write error leaves a previously existing manifest untouched. Both sides
// fail with a *types.FilesystemError.
func Generate(ctx context.Context, opts Options) (*Result, error) {
	_ = opts.Validate()

	s := scanner.New(scanner.Options{
		Root:       opts.Root,
		Extensions: opts.Extensions,
	})
	scanResult, err := s.Scan(ctx)
	if err != nil {
		return nil, err
	}

	paths := scanResult.Paths
	sort.Strings(paths)

	if err := Write(opts.Path, paths); err != nil {
		return nil, err
	}

	logging.Get("manifest").Info("manifest written",
		"path", opts.Path,
		"count", len(paths),
		"root", opts.Root)

	return &Result{
		Paths: paths,
		Count: len(paths),
		Root:  opts.Root,
		Path:  opts.Path,
		Stats: scanResult,
	}, nil
}

// Encode writes paths to w as a JSON array with 2-space indentation.
// HTML escaping is disabled so non-ASCII characters and <>& pass through
// literally. The encoder's trailing newline is part of the output.
func Encode(w io.Writer, paths []string) error {
	if paths == nil {
		paths = []string{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(paths)
}

// Write atomically replaces the manifest at path with the given entries.
// The content is staged in a temp file beside the target and renamed over
// it, so a failed write never clobbers an existing manifest.
func Write(path string, paths []string) error {
	var buf bytes.Buffer
	if err := Encode(&buf, paths); err != nil {
		return types.NewFilesystemError("write manifest", path, err)
	}

	// Write atomically using a temp file and rename
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, buf.Bytes(), 0o644); err != nil {
		return types.NewFilesystemError("write manifest", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		// Cleanup temp file on rename failure
		_ = os.Remove(tmpPath)
		return types.NewFilesystemError("write manifest", path, err)
	}

	return nil
}

// Read parses a manifest file back into its entries.
// Entries come back exactly as stored; no sorting or validation beyond
// JSON well-formedness is applied.
func Read(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.NewFilesystemError("read manifest", path, err)
	}

	var paths []string
	if err := json.Unmarshal(data, &paths); err != nil {
		return nil, types.NewFilesystemError("read manifest", path,
			fmt.Errorf("%w: %v", types.ErrMalformedManifest, err))
	}

	return paths, nil
}
