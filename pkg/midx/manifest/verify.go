package manifest

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"github.com/pianoroll/midx/pkg/midx/logging"
	"github.com/pianoroll/midx/pkg/midx/scanner"
	"github.com/pianoroll/midx/pkg/midx/types"
)

// VerifyReport describes which manifest entries exist on disk.
type VerifyReport struct {
	// Present is the number of entries whose file exists under root.
	Present int

	// Missing lists entries whose file no longer exists.
	Missing []string

	// Total is the number of manifest entries checked.
	Total int
}

// OK reports whether every manifest entry resolves to an existing file.
func (r *VerifyReport) OK() bool {
	return len(r.Missing) == 0
}

// Verify reads the manifest at path and stats every entry under root.
// It is read-only: neither the manifest nor the tree is modified.
// A missing or malformed manifest fails with a *types.FilesystemError.
func Verify(root, path string) (*VerifyReport, error) {
	paths, err := Read(path)
	if err != nil {
		return nil, err
	}

	report := &VerifyReport{Total: len(paths)}
	for _, rel := range paths {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if _, err := os.Stat(full); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				report.Missing = append(report.Missing, rel)
				continue
			}
			return nil, types.NewFilesystemError("verify", full, err)
		}
		report.Present++
	}

	if len(report.Missing) > 0 {
		logging.Get("manifest").Warn("manifest has missing entries",
			"missing", len(report.Missing),
			"total", report.Total)
	}

	return report, nil
}

// CheckReport describes drift between the manifest file and the tree.
type CheckReport struct {
	// InSync is true when the manifest file matches a fresh generation
	// exactly, including entry order.
	InSync bool

	// ManifestMissing is true when there is no manifest file to compare.
	ManifestMissing bool

	// Added lists files on disk that are not in the manifest.
	Added []string

	// Removed lists manifest entries that are no longer on disk.
	Removed []string
}

// Check regenerates the manifest in memory and compares it with the file
// on disk. It never writes. A missing manifest file is reported as out of
// sync with ManifestMissing set, not as an error; scan failures and
// malformed manifests are errors. InSync also catches ordering drift,
// which shows up with empty Added/Removed lists.
func Check(ctx context.Context, opts Options) (*CheckReport, error) {
	_ = opts.Validate()

	s := scanner.New(scanner.Options{
		Root:       opts.Root,
		Extensions: opts.Extensions,
	})
	scanResult, err := s.Scan(ctx)
	if err != nil {
		return nil, err
	}

	current := scanResult.Paths
	sort.Strings(current)

	recorded, err := Read(opts.Path)
	if err != nil {
		var fsErr *types.FilesystemError
		if errors.As(err, &fsErr) && errors.Is(fsErr.Err, fs.ErrNotExist) {
			// No manifest yet: everything on disk is unrecorded.
			return &CheckReport{ManifestMissing: true, Added: current}, nil
		}
		return nil, err
	}

	added, removed := diffPaths(current, recorded)
	return &CheckReport{
		InSync:  slices.Equal(current, recorded),
		Added:   added,
		Removed: removed,
	}, nil
}

// diffPaths returns the set difference between the freshly scanned paths
// (already sorted) and the recorded manifest entries.
func diffPaths(current, recorded []string) (added, removed []string) {
	sorted := slices.Clone(recorded)
	sort.Strings(sorted)

	i, j := 0, 0
	for i < len(current) && j < len(sorted) {
		switch {
		case current[i] == sorted[j]:
			i++
			j++
		case current[i] < sorted[j]:
			added = append(added, current[i])
			i++
		default:
			removed = append(removed, sorted[j])
			j++
		}
	}
	added = append(added, current[i:]...)
	removed = append(removed, sorted[j:]...)
	return added, removed
}
