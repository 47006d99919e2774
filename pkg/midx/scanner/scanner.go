package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charlievieth/fastwalk"

	"github.com/pianoroll/midx/pkg/midx/logging"
	"github.com/pianoroll/midx/pkg/midx/types"
)

// Scanner walks a directory tree collecting files whose extension is in
// the configured set.
type Scanner struct {
	opts Options

	// extensions is the normalized lookup set built from opts.Extensions.
	extensions map[string]struct{}

	// paths collects matched files as root-relative slash paths.
	paths []string

	dirsScanned  int64
	filesScanned int64

	// root is the resolved absolute path being scanned.
	root string
}

// New creates a new Scanner with the given options.
// Options are validated and defaults are applied.
func New(opts Options) *Scanner {
	// Validate sets defaults for invalid values; it currently doesn't return errors
	// but we call it to ensure options are properly initialized.
	_ = opts.Validate()

	return &Scanner{
		opts:       opts,
		extensions: normalizeExtensions(opts.Extensions),
		paths:      make([]string, 0),
	}
}

// Scan performs the scan and returns results.
// It blocks until complete, the first filesystem error, or context
// cancellation. Any error leaves previously written manifests untouched:
// the scanner itself never writes.
func (s *Scanner) Scan(ctx context.Context) (*types.ScanResult, error) {
	startTime := time.Now()

	// Resolve and validate root path.
	root, err := s.validateRoot()
	if err != nil {
		return nil, err
	}
	s.root = root

	log := logging.Get("scanner")
	log.Debug("scan started", "root", root)

	if err := s.walk(ctx); err != nil {
		return nil, err
	}

	result := &types.ScanResult{
		Paths:        s.paths,
		DirsScanned:  s.dirsScanned,
		FilesScanned: s.filesScanned,
		Elapsed:      time.Since(startTime),
	}

	log.Debug("scan complete",
		"matched", result.Matched(),
		"dirs", result.DirsScanned,
		"files", result.FilesScanned,
		"elapsed", result.Elapsed)

	return result, nil
}

// validateRoot resolves the root path to absolute and verifies it is a directory.
func (s *Scanner) validateRoot() (string, error) {
	root, err := filepath.Abs(s.opts.Root)
	if err != nil {
		return "", types.NewFilesystemError("scan", s.opts.Root, err)
	}

	rootInfo, err := os.Stat(root)
	if err != nil {
		return "", types.NewFilesystemError("scan", root, err)
	}
	if !rootInfo.IsDir() {
		return "", types.NewFilesystemError("scan", root, types.ErrNotDirectory)
	}

	return root, nil
}

// walk runs fastwalk over the root. A single worker with lexical sorting
// keeps traversal serial; the caller applies the global sort.
func (s *Scanner) walk(ctx context.Context) error {
	conf := fastwalk.Config{
		Follow:     false, // Don't follow symlinks.
		NumWorkers: 1,
		Sort:       fastwalk.SortLexical,
	}

	return fastwalk.Walk(&conf, s.root, s.walkCallback(ctx))
}

// walkCallback returns the callback function for fastwalk.Walk.
// The first error aborts the walk and is returned from Scan unchanged.
func (s *Scanner) walkCallback(ctx context.Context) fs.WalkDirFunc {
	return func(path string, d fs.DirEntry, err error) error {
		// Check for cancellation.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			return types.NewFilesystemError("scan", path, err)
		}

		if d.IsDir() {
			s.dirsScanned++
			return nil
		}

		// Symlinks and special files are never candidates.
		if !d.Type().IsRegular() {
			return nil
		}

		s.filesScanned++

		if !s.matches(path) {
			return nil
		}

		rel, relErr := filepath.Rel(s.root, path)
		if relErr != nil {
			return types.NewFilesystemError("scan", path, relErr)
		}

		s.paths = append(s.paths, filepath.ToSlash(rel))
		return nil
	}
}

// matches reports whether the file's extension is in the configured set.
// Comparison is case-insensitive; extensionless files never match.
func (s *Scanner) matches(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	_, ok := s.extensions[ext]
	return ok
}
